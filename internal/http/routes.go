package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitpress/internal/apipaths"
	"github.com/gitpress/internal/system"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Liveness endpoint for the editor's connectivity check
	s.engine.GET(apipaths.Root, func(c *gin.Context) {
		c.String(http.StatusOK, "gitpress API is running")
	})

	s.engine.GET(apipaths.Health, s.getHealth)

	api := s.engine.Group("/api")
	{
		api.POST("/auth/github", s.exchangeGitHubCode)
		api.POST("/create-post", s.createPost)
		api.POST("/update-post", s.updatePost)

		// One relay handler serves both routes; file-vs-folder is decided
		// here at the dispatch boundary, not inferred inside the handler
		api.GET("/github/contents/:folder", s.getFolderContents)
		api.GET("/github/contents/:folder/:filename", s.getFileContents)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Route not found"})
	})
}

// getHealth returns service status plus a host resource snapshot
func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gitpress",
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
		"system":  system.Collect(),
	})
}
