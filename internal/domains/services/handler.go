package services

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sangkips/customer-directory-api/internal/handlers"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterServiceRoutes(r chi.Router) {
	r.Get("/", handlers.Handle(h.listServices))
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) error {
	rows, err := h.repo.ListServices(r.Context())
	if err != nil {
		return handlers.NewError(http.StatusInternalServerError, "Error fetching services", err)
	}
	handlers.RespondWithJSON(w, http.StatusOK, rows)
	return nil
}
