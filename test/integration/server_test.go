//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

// TestServer_Infrastructure checks the common endpoints (health, readiness,
// version, metrics) respond on a freshly started server.
func TestServer_Infrastructure(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	t.Run("liveness", func(t *testing.T) {
		resp, err := http.Get(testEnv.baseURL + "/health/live")
		if err != nil {
			t.Fatalf("failed to call health endpoint: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("readiness", func(t *testing.T) {
		resp, err := http.Get(testEnv.baseURL + "/ready")
		if err != nil {
			t.Fatalf("failed to call readiness endpoint: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("version", func(t *testing.T) {
		resp, err := http.Get(testEnv.baseURL + "/version")
		if err != nil {
			t.Fatalf("failed to call version endpoint: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var version struct {
			Service string `json:"service"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
			t.Fatalf("failed to decode version response: %v", err)
		}
		if version.Service != "blog-server" {
			t.Errorf("expected service 'blog-server', got %q", version.Service)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(testEnv.baseURL + "/metrics")
		if err != nil {
			t.Fatalf("failed to call metrics endpoint: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("failed to read metrics body: %v", err)
		}
		if !strings.Contains(string(body), "http_requests_total") {
			t.Error("metrics output missing http_requests_total")
		}
	})
}
