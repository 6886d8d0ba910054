package books

import (
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/isbn-books-api/internal/store/books"
)

// DELETE /books/{isbn}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	if err := h.Sto.Delete(r.Context(), isbn); errors.Is(err, storebooks.ErrNotFound) {
		apperr.NotFound(w, notFoundMessage(isbn))
		return
	} else if err != nil {
		apperr.HandleDBError(w, r, err)
		return
	}

	log.Printf("[books] deleted isbn=%s", isbn)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Book deleted"})
}
