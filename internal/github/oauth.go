package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// ErrNoAccessToken indicates the provider reported no error yet returned
// no access token either
var ErrNoAccessToken = errors.New("github oauth response contained no access token")

// OAuthError is an explicit error reported by GitHub's OAuth token endpoint
// (e.g. bad_verification_code)
type OAuthError struct {
	Code        string
	Description string
}

func (e *OAuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("github oauth error %s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("github oauth error: %s", e.Code)
}

// UserMessage returns the provider's human-readable description, falling
// back to the error code
func (e *OAuthError) UserMessage() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

// User is the minimal profile summary handed back to the editor
type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

type tokenExchangeRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	RedirectURI  string `json:"redirect_uri"`
}

type tokenExchangeResponse struct {
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode trades an OAuth authorization code for an access token via
// GitHub's token endpoint. The token is handed straight back to the caller
// and never stored.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	reqBody := tokenExchangeRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Code:         code,
		RedirectURI:  redirectURI,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	// Without this GitHub answers with form-encoded text
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	slog.InfoContext(ctx, "GitHub OAuth token exchange", "url", c.tokenURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("github token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	var parsed tokenExchangeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal token response: %w", err)
	}

	if parsed.Error != "" {
		return "", &OAuthError{Code: parsed.Error, Description: parsed.ErrorDescription}
	}

	if parsed.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	return parsed.AccessToken, nil
}

// AuthenticatedUser fetches the profile of the user the token belongs to
func (c *Client) AuthenticatedUser(ctx context.Context, token string) (*User, error) {
	resp, err := c.Call(ctx, http.MethodGet, "/user", token, nil, AcceptJSON)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user profile: %w", err)
	}

	return &user, nil
}
