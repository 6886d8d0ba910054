package books

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/models"
)

// Store is the persistence the book routes need.
type Store interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, isbn string) (models.Book, error)
	Create(ctx context.Context, b models.Book) (models.Book, error)
	Update(ctx context.Context, isbn string, b models.Book) (models.Book, error)
	Delete(ctx context.Context, isbn string) error
}

type Handler struct {
	Sto Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Sto: store}
}

// Register mounts the book routes. POST is only defined on the collection;
// POST /books/{isbn} falls through to the mux's not-found route.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{isbn}", h.Get)
	mux.HandleFunc("PUT /books/{isbn}", h.Put)
	mux.HandleFunc("DELETE /books/{isbn}", h.Delete)
}

type bookEnvelope struct {
	Book models.Book `json:"book"`
}

// readBody reads the request body and writes 413 when the size limit trips.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			apperr.Write(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		apperr.Write(w, http.StatusBadRequest, "could not read request body")
		return nil, false
	}
	return body, true
}

func notFoundMessage(isbn string) string {
	return "No book with isbn '" + isbn + "'"
}
