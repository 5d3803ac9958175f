package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/middleware"
	"github.com/bloom-cafe/api/internal/model"
)

// OrderSubmitter defines the service methods needed by the order handler.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderSubmitter interface {
	Submit(ctx context.Context, sess *cart.Session) (*model.Order, error)
}

// OrderHandler handles the customer order submission endpoint.
type OrderHandler struct {
	svc OrderSubmitter
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderSubmitter) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted inside the session middleware: /orders
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Submit)
}

type lineItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type orderResponse struct {
	ID        string             `json:"id"`
	TableID   string             `json:"table_id"`
	Items     []lineItemResponse `json:"items"`
	Total     string             `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func toOrderResponse(o *model.Order) orderResponse {
	resp := orderResponse{
		ID:        o.ID,
		TableID:   o.TableID,
		Items:     make([]lineItemResponse, len(o.Items)),
		Total:     o.Total.StringFixed(2),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
	for i, item := range o.Items {
		resp.Items[i] = lineItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		}
	}
	return resp
}

// Submit handles POST /orders. Submitting an empty cart does nothing and
// reports nothing to submit.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no session"})
		return
	}

	order, err := h.svc.Submit(r.Context(), sess)
	if err != nil {
		log.Printf("ERROR: submit order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "order could not be placed, please try again"})
		return
	}
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}
