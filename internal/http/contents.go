package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitpress/internal/apipaths"
	"github.com/gitpress/internal/github"
	"github.com/gitpress/internal/validation"
)

// getFolderContents relays a directory listing from the repository
func (s *Server) getFolderContents(c *gin.Context) {
	s.relayContents(c, c.Param("folder"), "", false)
}

// getFileContents relays a single file from the repository
func (s *Server) getFileContents(c *gin.Context) {
	s.relayContents(c, c.Param("folder"), c.Param("filename"), true)
}

// relayContents forwards a Contents API read and relays GitHub's response
// verbatim. Markdown files are fetched raw and served as plain text; every
// other target (non-markdown files, directory listings) is relayed as the
// JSON GitHub returns.
func (s *Server) relayContents(c *gin.Context, folder, filename string, isFile bool) {
	ctx := c.Request.Context()

	if !s.config.HasContentCredentials() {
		slog.ErrorContext(ctx, "GitHub content credentials not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub credentials are not configured on the server"})
		return
	}

	if err := validation.ValidateRepoPath(folder); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid folder", ErrorDetails: err.Error()})
		return
	}

	repoPath := folder
	accept := github.AcceptJSON
	if isFile {
		if err := validation.ValidateFileName(filename); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid filename", ErrorDetails: err.Error()})
			return
		}
		repoPath = folder + "/" + filename
		if strings.HasSuffix(strings.ToLower(filename), ".md") {
			accept = github.AcceptRaw
		}
	}

	path := apipaths.Contents(s.config.GitHub.Username, s.config.GitHub.Repo, repoPath)

	resp, err := s.github.Call(ctx, http.MethodGet, path, s.config.GitHub.Token, nil, accept)
	if err != nil {
		slog.ErrorContext(ctx, "contents fetch failed", "path", path, "error", err)
		writeGitHubError(c, "Failed to fetch contents from GitHub", err)
		return
	}

	if accept == github.AcceptRaw {
		c.Data(resp.StatusCode, "text/plain; charset=utf-8", resp.Body)
		return
	}
	c.Data(resp.StatusCode, "application/json; charset=utf-8", resp.Body)
}
