package books

import (
	"net/http"

	"github.com/5w1tchy/isbn-books-api/internal/api/apperr"
	"github.com/5w1tchy/isbn-books-api/internal/api/httpx"
	"github.com/5w1tchy/isbn-books-api/internal/models"
)

// GET /books
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Sto.List(r.Context())
	if err != nil {
		apperr.HandleDBError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct {
		Books []models.Book `json:"books"`
	}{list})
}
