package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/catalog"
	"github.com/bloom-cafe/api/internal/middleware"
	"github.com/bloom-cafe/api/internal/pricing"
)

// CartHandler handles the caller's cart endpoints. The session middleware
// resolves which cart a request operates on.
type CartHandler struct{}

// NewCartHandler creates a new CartHandler.
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted inside the session middleware: /cart
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/items", h.AddItem)
	r.Patch("/items/{name}", h.UpdateQuantity)
	r.Delete("/items/{name}", h.RemoveItem)
	r.Delete("/", h.Clear)
}

// --- Request / Response types ---

type addItemRequest struct {
	Name string `json:"name"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

type cartLineResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	TableID      string             `json:"table_id"`
	Lines        []cartLineResponse `json:"lines"`
	Subtotal     string             `json:"subtotal"`
	Tax          string             `json:"tax"`
	Total        string             `json:"total"`
	Confirmation *confirmationView  `json:"confirmation,omitempty"`
}

type confirmationView struct {
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id"`
	Subtotal  string    `json:"subtotal"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toCartResponse(sess *cart.Session) cartResponse {
	lines := sess.Cart().Lines()
	subtotal := sess.Cart().Subtotal()
	resp := cartResponse{
		TableID:  sess.TableID,
		Lines:    make([]cartLineResponse, len(lines)),
		Subtotal: subtotal.StringFixed(2),
		Tax:      pricing.Tax(subtotal).StringFixed(2),
		Total:    pricing.WithTax(subtotal).StringFixed(2),
	}
	for i, line := range lines {
		resp.Lines[i] = cartLineResponse{
			Name:      line.Item.Name,
			Category:  line.Item.Category,
			Price:     line.Item.Price.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).StringFixed(2),
		}
	}
	if conf, ok := sess.Confirmation(); ok {
		resp.Confirmation = &confirmationView{
			OrderID:   conf.OrderID,
			TableID:   conf.TableID,
			Subtotal:  conf.Subtotal.StringFixed(2),
			ExpiresAt: conf.ExpiresAt,
		}
	}
	return resp
}

// --- Handlers ---

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(sess))
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	item, ok := catalog.ByName(req.Name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown menu item"})
		return
	}

	sess.Cart().AddItem(item)
	writeJSON(w, http.StatusOK, toCartResponse(sess))
}

// UpdateQuantity handles PATCH /cart/items/{name}.
// A delta that drives the quantity to zero or below removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	sess.Cart().UpdateQuantity(chi.URLParam(r, "name"), req.Delta)
	writeJSON(w, http.StatusOK, toCartResponse(sess))
}

// RemoveItem handles DELETE /cart/items/{name}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}

	sess.Cart().RemoveItem(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, toCartResponse(sess))
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}

	sess.Cart().Clear()
	writeJSON(w, http.StatusOK, toCartResponse(sess))
}
