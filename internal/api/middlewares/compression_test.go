package middlewares_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/isbn-books-api/internal/api/middlewares"
)

var bodyHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"books":[]}`))
})

func TestCompression_Gzip(t *testing.T) {
	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	mw.Compression(bodyHandler).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Expected gzip encoding, got %q", rec.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	plain, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(plain) != `{"books":[]}` {
		t.Errorf("Unexpected body %q", plain)
	}
}

func TestCompression_Passthrough(t *testing.T) {
	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.Compression(bodyHandler).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("Did not expect Content-Encoding without Accept-Encoding")
	}
	if rec.Body.String() != `{"books":[]}` {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}
