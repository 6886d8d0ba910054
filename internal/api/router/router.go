package router

import (
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/handlers"
	"github.com/5w1tchy/isbn-books-api/internal/api/handlers/books"
)

// Router wires the routes. Anything unmatched, including POST /books/{isbn},
// gets the JSON 404.
func Router(store books.Store, db handlers.Pinger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", apperr.NotFoundHandler)
	mux.Handle("GET /healthz", handlers.Health(db))

	books.NewHandler(store).Register(mux)

	return mux
}
