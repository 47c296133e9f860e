package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const (
	apiBaseURL    = "https://api.github.com"
	oauthTokenURL = "https://github.com/login/oauth/access_token"
)

// Accept header values understood by the GitHub Contents API. The API
// overloads Accept to select between JSON metadata and raw file bytes.
const (
	AcceptJSON = "application/vnd.github+json"
	AcceptRaw  = "application/vnd.github.raw"
)

// HTTPClient interface abstracts HTTP operations for testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues requests against the GitHub REST API
type Client struct {
	httpClient HTTPClient
	apiBaseURL string
	tokenURL   string
}

// NewClient creates a client backed by the standard http.Client
func NewClient() *Client {
	return NewClientWithHTTP(&http.Client{})
}

// NewClientWithHTTP creates a client with an injected HTTP client (used in tests)
func NewClientWithHTTP(httpClient HTTPClient) *Client {
	return &Client{
		httpClient: httpClient,
		apiBaseURL: apiBaseURL,
		tokenURL:   oauthTokenURL,
	}
}

// Response is GitHub's reply, passed through untouched
type Response struct {
	StatusCode int
	Body       []byte
}

// APIError is a GitHub error response normalized into a single shape
type APIError struct {
	StatusCode int
	Message    string
	Raw        json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API error (status %d): %s", e.StatusCode, e.Message)
}

// Call issues a single request to the GitHub REST API. The body, when
// non-nil, is JSON-encoded. An empty accept falls back to JSON metadata.
// Responses with status < 400 are returned verbatim; error responses are
// normalized into *APIError; transport failures carry no status and are
// propagated to the caller.
func (c *Client) Call(ctx context.Context, method, path, token string, body any, accept string) (*Response, error) {
	url := c.apiBaseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if accept == "" {
		accept = AcceptJSON
	}
	req.Header.Set("Accept", accept)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.InfoContext(ctx, "GitHub API call",
		"method", method,
		"url", url,
		"hasToken", token != "",
		"accept", accept,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// newAPIError extracts GitHub's "message" field when present, keeping the
// full body for callers that relay error details
func newAPIError(status int, body []byte) *APIError {
	message := "GitHub API request failed"

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}

	return &APIError{
		StatusCode: status,
		Message:    message,
		Raw:        json.RawMessage(body),
	}
}
