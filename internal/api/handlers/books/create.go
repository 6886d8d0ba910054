package books

import (
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/isbn-books-api/internal/store/books"
	"github.com/5w1tchy/isbn-books-api/internal/validate"
)

// POST /books
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	b, err := validate.Book(body, validate.Create)
	if err != nil {
		if ve, ok := validate.AsValidation(err); ok {
			apperr.Validation(w, ve.Violations)
			return
		}
		apperr.Internal(w, r, err)
		return
	}

	created, err := h.Sto.Create(r.Context(), b)
	switch {
	case errors.Is(err, storebooks.ErrConflict):
		apperr.Write(w, http.StatusConflict, "Book with isbn '"+b.ISBN+"' already exists")
		return
	case err != nil:
		apperr.HandleDBError(w, r, err)
		return
	}

	log.Printf("[books] created isbn=%s", created.ISBN)
	httpx.WriteJSON(w, http.StatusCreated, bookEnvelope{Book: created})
}
