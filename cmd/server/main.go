package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/gitpress/internal/config"
	"github.com/gitpress/internal/github"
	"github.com/gitpress/internal/http"
	"github.com/gitpress/internal/logger"
)

func main() {
	// Load .env file if it exists (optional, won't error if missing)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Environment)

	// Missing credentials are surfaced per-request as configuration errors,
	// but a startup summary saves operators a confused first deploy
	if cfg.HasContentCredentials() {
		slog.Info("GitHub content operations configured", "username", cfg.GitHub.Username, "repo", cfg.GitHub.Repo)
	} else {
		slog.Warn("GitHub content credentials incomplete - content endpoints will return configuration errors")
	}

	if cfg.HasOAuthCredentials() {
		clientID := cfg.OAuth.ClientID
		if len(clientID) > 8 {
			clientID = clientID[:8]
		}
		slog.Info("GitHub OAuth configured", "clientID", clientID+"...")
	} else {
		slog.Warn("GitHub OAuth credentials incomplete - auth endpoint will return configuration errors")
	}

	server := http.NewServer(cfg, github.NewClient())

	slog.Info("Starting server", "address", cfg.ServerAddress)
	if err := server.Run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
