package config

import (
	"os"
	"testing"
)

var configEnvVars = []string{
	"SERVER_ADDRESS",
	"ENVIRONMENT",
	"CORS_ALLOWED_ORIGINS",
	"GITHUB_TOKEN",
	"GITHUB_USERNAME",
	"GITHUB_REPO",
	"GITHUB_CLIENT_ID",
	"GITHUB_CLIENT_SECRET",
	"GITHUB_REDIRECT_URI",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		orig, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, orig)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("Expected default server address ':8080', got %s", cfg.ServerAddress)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected default environment 'development', got %s", cfg.Environment)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %d", len(cfg.CORS.AllowedOrigins))
	}
	if cfg.HasContentCredentials() {
		t.Error("Expected content credentials to be absent by default")
	}
	if cfg.HasOAuthCredentials() {
		t.Error("Expected OAuth credentials to be absent by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearConfigEnv(t)

	os.Setenv("SERVER_ADDRESS", ":9090")
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://editor.example.com, https://staging.example.com")
	os.Setenv("GITHUB_TOKEN", "pat")
	os.Setenv("GITHUB_USERNAME", "alice")
	os.Setenv("GITHUB_REPO", "blog")
	os.Setenv("GITHUB_CLIENT_ID", "client")
	os.Setenv("GITHUB_CLIENT_SECRET", "secret")
	os.Setenv("GITHUB_REDIRECT_URI", "https://editor.example.com/callback")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.ServerAddress != ":9090" {
		t.Errorf("Expected server address ':9090', got %s", cfg.ServerAddress)
	}
	if !cfg.HasContentCredentials() {
		t.Error("Expected content credentials to be present")
	}
	if !cfg.HasOAuthCredentials() {
		t.Error("Expected OAuth credentials to be present")
	}

	want := []string{"https://editor.example.com", "https://staging.example.com"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("Expected %d CORS origins, got %d", len(want), len(cfg.CORS.AllowedOrigins))
	}
	for i, origin := range want {
		if cfg.CORS.AllowedOrigins[i] != origin {
			t.Errorf("Expected origin %q at %d, got %q", origin, i, cfg.CORS.AllowedOrigins[i])
		}
	}
}

func TestHasContentCredentialsRequiresAllThree(t *testing.T) {
	cfg := &Config{GitHub: GitHubConfig{Token: "pat", Username: "alice"}}
	if cfg.HasContentCredentials() {
		t.Error("Expected credentials check to fail without a repo name")
	}

	cfg.GitHub.Repo = "blog"
	if !cfg.HasContentCredentials() {
		t.Error("Expected credentials check to pass with all three values")
	}
}

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty string", "", 0},
		{"single item", "http://localhost:5173", 1},
		{"items with whitespace", " a , b ,c ", 3},
		{"trailing comma", "a,b,", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommaSeparatedList(tt.input)
			if len(got) != tt.want {
				t.Errorf("Expected %d items, got %d (%v)", tt.want, len(got), got)
			}
		})
	}
}
