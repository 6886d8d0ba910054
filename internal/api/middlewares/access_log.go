package middlewares

import (
	"log"
	"net/http"
	"time"
)

type statusWriter struct {
	http.ResponseWriter
	status        int
	bytes         int64
	headerWritten bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.headerWritten {
		w.status = code
		w.headerWritten = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// AccessLog prints one line per request once the handler returns.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		log.Printf("[http] method=%s path=%s status=%d bytes=%d duration_ms=%d request_id=%s",
			r.Method, r.URL.Path, sw.status, sw.bytes, time.Since(start).Milliseconds(), GetRequestID(r))
	})
}
