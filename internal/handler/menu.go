package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloom-cafe/api/internal/catalog"
)

// MenuHandler serves the item catalog.
type MenuHandler struct{}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

type menuItemResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

type menuResponse struct {
	Groups     map[string][]string `json:"groups"`
	Categories []string            `json:"categories"`
	Items      []menuItemResponse  `json:"items"`
}

// List handles GET /menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items := catalog.Items()
	resp := menuResponse{
		Groups:     catalog.TopLevel,
		Categories: catalog.Categories(),
		Items:      make([]menuItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = menuItemResponse{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
