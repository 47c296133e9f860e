package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpress/internal/github"
)

// AuthRequest represents an OAuth code exchange request from the editor
type AuthRequest struct {
	Code string `json:"code" binding:"required"`
}

// exchangeGitHubCode trades the editor's OAuth authorization code for an
// access token and the owning user's profile. The token goes straight back
// to the caller; nothing is stored server-side.
func (s *Server) exchangeGitHubCode(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "auth request missing code", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Authorization code is required"})
		return
	}

	// Configuration is checked before any network call
	if !s.config.HasOAuthCredentials() {
		slog.ErrorContext(c.Request.Context(), "OAuth credentials not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub OAuth is not configured on the server"})
		return
	}

	ctx := c.Request.Context()
	oauth := s.config.OAuth

	token, err := s.github.ExchangeCode(ctx, oauth.ClientID, oauth.ClientSecret, req.Code, oauth.RedirectURI)
	if err != nil {
		var oauthErr *github.OAuthError
		switch {
		case errors.As(err, &oauthErr):
			slog.WarnContext(ctx, "OAuth provider rejected code", "code", oauthErr.Code)
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: oauthErr.UserMessage()})
		case errors.Is(err, github.ErrNoAccessToken):
			slog.ErrorContext(ctx, "OAuth exchange returned no token")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub did not return an access token"})
		default:
			slog.ErrorContext(ctx, "OAuth exchange failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub authentication failed", ErrorDetails: err.Error()})
		}
		return
	}

	user, err := s.github.AuthenticatedUser(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch user profile", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch GitHub user profile", ErrorDetails: err.Error()})
		return
	}

	slog.InfoContext(ctx, "OAuth exchange completed", "login", user.Login)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"login":      user.Login,
			"avatar_url": user.AvatarURL,
			"name":       user.Name,
		},
		"message": "Authentication successful",
	})
}
