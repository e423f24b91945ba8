package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/jobportal-tui/internal/config"
	"github.com/altinukshini/jobportal-tui/internal/logging"
)

func TestEndpoint(t *testing.T) {
	c := &Client{baseURL: "https://jobs.example.com/api"}

	tests := []struct {
		name  string
		path  string
		query url.Values
		want  string
	}{
		{name: "plain", path: "job-listings/4", want: "https://jobs.example.com/api/job-listings/4"},
		{name: "leading slash", path: "/applications/9", want: "https://jobs.example.com/api/applications/9"},
		{name: "query", path: "globalSearch", query: url.Values{"q": {"go dev"}}, want: "https://jobs.example.com/api/globalSearch?q=go+dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.endpoint(tt.path, tt.query)
			if got != tt.want {
				t.Errorf("endpoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

// newTestClient serves r under /api on a local test server.
func newTestClient(t *testing.T, r *mux.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/api"
	cfg.Token = "secret"
	c, err := NewClient(cfg, logging.Discard())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
