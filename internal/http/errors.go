package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpress/internal/github"
)

// ErrorResponse is the single error wire shape every handler and the final
// recovery stage produce
type ErrorResponse struct {
	Message      string `json:"message"`
	ErrorDetails any    `json:"errorDetails,omitempty"`
}

// writeGitHubError converts any error coming out of the GitHub client into
// the shared wire shape. Upstream API errors keep GitHub's status and raw
// body; everything else (transport, decoding) is a 500.
func writeGitHubError(c *gin.Context, fallback string, err error) {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, ErrorResponse{
			Message:      apiErr.Message,
			ErrorDetails: rawJSON(apiErr.Raw),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message:      fallback,
		ErrorDetails: err.Error(),
	})
}

// rawJSON embeds an upstream body verbatim when it is valid JSON, falling
// back to a plain string so the relay never produces a malformed document
func rawJSON(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
