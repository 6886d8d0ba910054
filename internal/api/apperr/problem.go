package apperr

import (
	"encoding/json"
	"log"
	"net/http"
)

// Body is the error payload: {"error":{"message":...,"status":...}}.
// Message is a string, or a list of strings for validation failures.
type Body struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

func Write(w http.ResponseWriter, status int, message any) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Body{Error: Detail{Message: message, Status: status}})
}

func Validation(w http.ResponseWriter, violations []string) {
	Write(w, http.StatusBadRequest, violations)
}

func NotFound(w http.ResponseWriter, message string) {
	Write(w, http.StatusNotFound, message)
}

// NotFoundHandler answers every request that matched no route.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	NotFound(w, "Not Found")
}

// Internal logs err and writes a generic 500; details never reach the client.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
	Write(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
