package middlewares_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/isbn-books-api/internal/api/middlewares"
)

func readAllHandler(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestBodySizeLimit_AcceptsSmallBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(64)(http.HandlerFunc(readAllHandler))

	req := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte("small body")))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_RejectsLargeBodies(t *testing.T) {
	for _, method := range []string{"POST", "PUT", "PATCH"} {
		wrapped := mw.BodySizeLimit(64)(http.HandlerFunc(readAllHandler))

		req := httptest.NewRequest(method, "/test", bytes.NewReader(bytes.Repeat([]byte("a"), 65)))
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("%s: expected 413, got %d", method, rec.Code)
		}
	}
}

func TestBodySizeLimit_DefaultsWhenUnset(t *testing.T) {
	wrapped := mw.BodySizeLimit(0)(http.HandlerFunc(readAllHandler))

	body := bytes.Repeat([]byte("a"), int(mw.DefaultMaxBodyBytes)+1)
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}

func TestBodySizeLimit_OnlyAppliesToMutatingMethods(t *testing.T) {
	wrapped := mw.BodySizeLimit(4)(http.HandlerFunc(readAllHandler))

	req := httptest.NewRequest("GET", "/test", strings.NewReader("should not matter"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for GET, got %d", rec.Code)
	}
}
