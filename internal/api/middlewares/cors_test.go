package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/isbn-books-api/internal/api/middlewares"
)

func TestCors(t *testing.T) {
	wrapped := mw.Cors([]string{"http://localhost:5173"})(okHandler)

	cases := []struct {
		name, method, origin string
		status               int
		allowOrigin          string
	}{
		{"no origin", "GET", "", http.StatusOK, ""},
		{"allowed", "GET", "http://localhost:5173", http.StatusOK, "http://localhost:5173"},
		{"preflight", "OPTIONS", "http://localhost:5173", http.StatusNoContent, "http://localhost:5173"},
		{"blocked", "GET", "http://evil.example", http.StatusForbidden, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, "/books", nil)
			if c.origin != "" {
				req.Header.Set("Origin", c.origin)
			}
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if rec.Code != c.status {
				t.Errorf("Expected %d, got %d", c.status, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != c.allowOrigin {
				t.Errorf("Allow-Origin: expected %q, got %q", c.allowOrigin, got)
			}
		})
	}
}
