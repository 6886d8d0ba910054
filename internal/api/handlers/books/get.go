package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/isbn-books-api/internal/store/books"
)

// GET /books/{isbn}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	b, err := h.Sto.Get(r.Context(), isbn)
	if errors.Is(err, storebooks.ErrNotFound) {
		apperr.NotFound(w, notFoundMessage(isbn))
		return
	} else if err != nil {
		apperr.HandleDBError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookEnvelope{Book: b})
}
