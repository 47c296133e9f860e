package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gitpress/internal/apipaths"
	"github.com/gitpress/internal/config"
	"github.com/gitpress/internal/github"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: ":0",
		Environment:   "production",
		GitHub: config.GitHubConfig{
			Token:    "test-pat",
			Username: "alice",
			Repo:     "blog",
		},
		OAuth: config.OAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:5173/callback",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *github.MockHTTPClient) {
	t.Helper()
	mockClient := github.NewMockHTTPClient()
	server := NewServer(cfg, github.NewClientWithHTTP(mockClient))
	return server, mockClient
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestLiveness(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	w := serve(server, httptest.NewRequest(http.MethodGet, apipaths.Root, nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Errorf("Expected liveness string, got %q", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	w := serve(server, httptest.NewRequest(http.MethodGet, apipaths.Health, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", body["status"])
	}
	if body["service"] != "gitpress" {
		t.Errorf("Expected service 'gitpress', got %v", body["service"])
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	w := serve(server, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] == nil || body["message"] == "" {
		t.Error("Expected a message field in the 404 body")
	}
}

func TestRequestIDHeader(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	w := serve(server, httptest.NewRequest(http.MethodGet, apipaths.Health, nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, apipaths.Health, nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = serve(server, req)
	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("Expected caller-supplied request ID to be kept, got %q", got)
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, apipaths.Health, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(server, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected allowed origin echoed back, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials allowed, got %q", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, apipaths.Health, nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := serve(server, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no allow-origin header for unknown origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, apipaths.CreatePost, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(server, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("Expected POST in allowed methods, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Errorf("Expected Authorization in allowed headers, got %q", got)
	}
}

func TestOversizedJSONBodyRejected(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	req := jsonRequest(http.MethodPost, apipaths.CreatePost, `{}`)
	req.ContentLength = maxBodySize + 1
	w := serve(server, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", w.Code)
	}
}
