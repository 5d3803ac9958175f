package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloom-cafe/api/internal/enum"
	"github.com/bloom-cafe/api/internal/model"
	"github.com/bloom-cafe/api/internal/pricing"
	"github.com/bloom-cafe/api/internal/staff"
)

// DashboardView defines the dashboard methods needed by staff handlers.
// Satisfied by *staff.Dashboard; narrow interface for testability.
type DashboardView interface {
	Orders() []model.Order
	Reservations() []model.Reservation
	Messages() []model.ContactMessage
	ActiveOrderCount() int
	UnreadMessageCount() int

	AdvanceOrder(ctx context.Context, id string) (model.Order, error)
	MarkMessageRead(ctx context.Context, id string) error
	DeleteReservation(ctx context.Context, id string) error
	ClearOrders(ctx context.Context, confirm bool) error
	ClearReservations(ctx context.Context, confirm bool) error
	ClearMessages(ctx context.Context, confirm bool) error
}

// StaffHandler handles the staff dashboard endpoints.
type StaffHandler struct {
	dash DashboardView
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(dash DashboardView) *StaffHandler {
	return &StaffHandler{dash: dash}
}

// RegisterRoutes registers staff endpoints on the given Chi router.
// Expected to be mounted at /staff
func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/orders", h.ListOrders)
	r.Post("/orders/{id}/advance", h.AdvanceOrder)
	r.Delete("/orders", h.ClearOrders)
	r.Get("/reservations", h.ListReservations)
	r.Delete("/reservations/{id}", h.DeleteReservation)
	r.Delete("/reservations", h.ClearReservations)
	r.Get("/messages", h.ListMessages)
	r.Post("/messages/{id}/read", h.MarkMessageRead)
	r.Delete("/messages", h.ClearMessages)
}

// --- Response types ---

type staffOrderResponse struct {
	ID         string             `json:"id"`
	TableID    string             `json:"table_id"`
	Items      []lineItemResponse `json:"items"`
	Subtotal   string             `json:"subtotal"`
	Total      string             `json:"total"`
	Status     string             `json:"status"`
	NextStatus *string            `json:"next_status"`
	CreatedAt  time.Time          `json:"created_at"`
}

type summaryResponse struct {
	ActiveOrders   int `json:"active_orders"`
	UnreadMessages int `json:"unread_messages"`
}

func toStaffOrderResponse(o model.Order) staffOrderResponse {
	resp := staffOrderResponse{
		ID:        o.ID,
		TableID:   o.TableID,
		Items:     make([]lineItemResponse, len(o.Items)),
		Subtotal:  o.Total.StringFixed(2),
		Total:     pricing.WithTax(o.Total).StringFixed(2),
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
	if next, ok := enum.NextOrderStatus(o.Status); ok {
		resp.NextStatus = &next
	}
	return resp
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// --- Handlers ---

// Summary handles GET /staff/summary.
func (h *StaffHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, summaryResponse{
		ActiveOrders:   h.dash.ActiveOrderCount(),
		UnreadMessages: h.dash.UnreadMessageCount(),
	})
}

// ListOrders handles GET /staff/orders.
func (h *StaffHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.dash.Orders()
	resp := make([]staffOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toStaffOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": resp})
}

// AdvanceOrder handles POST /staff/orders/{id}/advance.
func (h *StaffHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.dash.AdvanceOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: advance order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toStaffOrderResponse(order))
}

// ClearOrders handles DELETE /staff/orders?confirm=true.
func (h *StaffHandler) ClearOrders(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, h.dash.ClearOrders)
}

// ListReservations handles GET /staff/reservations.
func (h *StaffHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations := h.dash.Reservations()
	resp := make([]reservationResponse, len(reservations))
	for i, res := range reservations {
		resp[i] = reservationResponse(res)
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": resp})
}

// DeleteReservation handles DELETE /staff/reservations/{id}.
func (h *StaffHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.dash.DeleteReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "reservation not found"})
			return
		}
		log.Printf("ERROR: delete reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearReservations handles DELETE /staff/reservations?confirm=true.
func (h *StaffHandler) ClearReservations(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, h.dash.ClearReservations)
}

// ListMessages handles GET /staff/messages.
func (h *StaffHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages := h.dash.Messages()
	resp := make([]messageResponse, len(messages))
	for i, m := range messages {
		resp[i] = messageResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": resp})
}

// MarkMessageRead handles POST /staff/messages/{id}/read.
func (h *StaffHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := h.dash.MarkMessageRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "message not found"})
			return
		}
		log.Printf("ERROR: mark message read: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearMessages handles DELETE /staff/messages?confirm=true.
func (h *StaffHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, h.dash.ClearMessages)
}

func (h *StaffHandler) clear(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, confirm bool) error) {
	if err := fn(r.Context(), confirmed(r)); err != nil {
		if errors.Is(err, staff.ErrConfirmationRequired) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "confirmation required"})
			return
		}
		log.Printf("ERROR: clear collection: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
