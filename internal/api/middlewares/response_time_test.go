package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "github.com/5w1tchy/isbn-books-api/internal/api/middlewares"
)

func TestResponseTime(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	mw.ResponseTime(handler).ServeHTTP(rec, req)

	d, err := time.ParseDuration(rec.Header().Get("X-Response-Time"))
	if err != nil {
		t.Fatalf("Response time seems invalid: %v", err)
	}
	if d < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms, got %s", d)
	}
}

func TestResponseTime_WithWrite(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("test response"))
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	mw.ResponseTime(handler).ServeHTTP(rec, req)

	if rec.Header().Get("X-Response-Time") == "" {
		t.Error("Expected X-Response-Time header when using Write")
	}
}

func TestResponseTime_NothingWritten(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("HEAD", "/test", nil)
	rec := httptest.NewRecorder()
	mw.ResponseTime(handler).ServeHTTP(rec, req)

	if rec.Header().Get("X-Response-Time") == "" {
		t.Error("Expected X-Response-Time header with empty response")
	}
}
