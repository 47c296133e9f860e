package http

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitpress/internal/apipaths"
	"github.com/gitpress/internal/github"
	"github.com/gitpress/internal/validation"
)

// CreatePostRequest represents a create post request
type CreatePostRequest struct {
	TargetDir     string `json:"targetDir" binding:"required"`
	FileName      string `json:"fileName" binding:"required"`
	CommitMessage string `json:"commitMessage" binding:"required"`
	FileContent   string `json:"fileContent" binding:"required"`
}

// UpdatePostRequest represents an update post request. SHA is GitHub's
// optimistic-concurrency precondition; a stale value makes GitHub reject
// the write.
type UpdatePostRequest struct {
	FilePath      string `json:"filePath" binding:"required"`
	NewContent    string `json:"newContent" binding:"required"`
	CommitMessage string `json:"commitMessage" binding:"required"`
	SHA           string `json:"sha" binding:"required"`
}

// contentsPutRequest is the body of a GitHub Contents API write
type contentsPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// createPost commits a new post file to the configured repository
func (s *Server) createPost(c *gin.Context) {
	if !s.config.HasContentCredentials() {
		slog.ErrorContext(c.Request.Context(), "GitHub content credentials not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub credentials are not configured on the server"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid create post request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Missing required fields: targetDir, fileName, commitMessage, fileContent"})
		return
	}

	if err := validation.ValidateRepoPath(req.TargetDir); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid targetDir", ErrorDetails: err.Error()})
		return
	}
	if err := validation.ValidateFileName(req.FileName); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid fileName", ErrorDetails: err.Error()})
		return
	}

	path := apipaths.Contents(s.config.GitHub.Username, s.config.GitHub.Repo, req.TargetDir+"/"+req.FileName)
	body := contentsPutRequest{
		Message: req.CommitMessage,
		Content: base64.StdEncoding.EncodeToString([]byte(req.FileContent)),
	}

	// No existence probe: a PUT without sha on an existing file is rejected
	// by GitHub and that rejection is relayed untouched
	resp, err := s.github.Call(c.Request.Context(), http.MethodPut, path, s.config.GitHub.Token, body, github.AcceptJSON)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "create post failed", "path", path, "error", err)
		writeGitHubError(c, "Failed to create post on GitHub", err)
		return
	}

	c.JSON(resp.StatusCode, gin.H{
		"message": "Post created successfully",
		"data":    rawJSON(resp.Body),
	})
}

// updatePost rewrites an existing post file, guarded by the sha precondition
func (s *Server) updatePost(c *gin.Context) {
	if !s.config.HasContentCredentials() {
		slog.ErrorContext(c.Request.Context(), "GitHub content credentials not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "GitHub credentials are not configured on the server"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid update post request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Missing required fields: filePath, newContent, commitMessage, sha"})
		return
	}

	if err := validation.ValidateRepoPath(req.FilePath); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid filePath", ErrorDetails: err.Error()})
		return
	}

	path := apipaths.Contents(s.config.GitHub.Username, s.config.GitHub.Repo, req.FilePath)
	body := contentsPutRequest{
		Message: req.CommitMessage,
		Content: base64.StdEncoding.EncodeToString([]byte(req.NewContent)),
		SHA:     req.SHA,
	}

	resp, err := s.github.Call(c.Request.Context(), http.MethodPut, path, s.config.GitHub.Token, body, github.AcceptJSON)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "update post failed", "path", path, "error", err)
		writeGitHubError(c, "Failed to update post on GitHub", err)
		return
	}

	// Hand the new blob SHA back so the editor can chain updates without
	// refetching the file
	var parsed struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	var newSha any
	if err := json.Unmarshal(resp.Body, &parsed); err == nil && parsed.Content.SHA != "" {
		newSha = parsed.Content.SHA
	}

	c.JSON(resp.StatusCode, gin.H{
		"message": "Post updated successfully",
		"data":    rawJSON(resp.Body),
		"newSha":  newSha,
	})
}
