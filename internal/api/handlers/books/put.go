package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/isbn-books-api/internal/store/books"
	"github.com/5w1tchy/isbn-books-api/internal/validate"
)

// PUT /books/{isbn} replaces every field but the isbn.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	b, err := validate.Book(body, validate.Update)
	if err != nil {
		if ve, ok := validate.AsValidation(err); ok {
			apperr.Validation(w, ve.Violations)
			return
		}
		apperr.Internal(w, r, err)
		return
	}

	updated, err := h.Sto.Update(r.Context(), isbn, b)
	if errors.Is(err, storebooks.ErrNotFound) {
		apperr.NotFound(w, notFoundMessage(isbn))
		return
	} else if err != nil {
		apperr.HandleDBError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookEnvelope{Book: updated})
}
