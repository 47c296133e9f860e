package config

import (
	"os"
	"strings"
)

// Config holds the application configuration. Loaded once at startup and
// read-only afterwards; handlers receive it explicitly instead of reading
// ambient environment state.
type Config struct {
	ServerAddress string
	Environment   string
	GitHub        GitHubConfig
	OAuth         OAuthConfig
	CORS          CORSConfig
}

// GitHubConfig holds the server-side credentials for content operations
type GitHubConfig struct {
	Token    string
	Username string
	Repo     string
}

// OAuthConfig holds the GitHub OAuth app settings for the code exchange
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	allowedOrigins := parseCommaSeparatedList(corsOrigins)

	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		GitHub: GitHubConfig{
			Token:    os.Getenv("GITHUB_TOKEN"),
			Username: os.Getenv("GITHUB_USERNAME"),
			Repo:     os.Getenv("GITHUB_REPO"),
		},
		OAuth: OAuthConfig{
			ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
			ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("GITHUB_REDIRECT_URI"),
		},
		CORS: CORSConfig{
			AllowedOrigins: allowedOrigins,
		},
	}, nil
}

// HasContentCredentials reports whether the server holds everything needed
// for repository content operations. Missing credentials are a per-request
// 500, not a startup failure.
func (c *Config) HasContentCredentials() bool {
	return c.GitHub.Token != "" && c.GitHub.Username != "" && c.GitHub.Repo != ""
}

// HasOAuthCredentials reports whether the OAuth code exchange is configured
func (c *Config) HasOAuthCredentials() bool {
	return c.OAuth.ClientID != "" && c.OAuth.ClientSecret != "" && c.OAuth.RedirectURI != ""
}

// parseCommaSeparatedList splits a comma-separated string into a slice
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return []string{}
	}

	items := strings.Split(s, ",")
	result := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}

	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
