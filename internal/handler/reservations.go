package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bloom-cafe/api/internal/enum"
	"github.com/bloom-cafe/api/internal/model"
	"github.com/bloom-cafe/api/internal/store"
)

// ReservationStore defines the store methods needed by the reservation
// handler. Satisfied by any store.Store; narrow interface for testability.
type ReservationStore interface {
	Create(ctx context.Context, c store.Collection, record any) (string, error)
}

// ReservationHandler handles the public reservation request endpoint.
type ReservationHandler struct {
	store ReservationStore
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(st ReservationStore) *ReservationHandler {
	return &ReservationHandler{store: st}
}

// RegisterRoutes registers reservation endpoints on the given Chi router.
func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
}

type createReservationRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Guests int    `json:"guests"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

type reservationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Guests    int       `json:"guests"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles POST /reservations. New reservations are born confirmed;
// there is no approval workflow.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}
	if req.Date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date is required"})
		return
	}
	if req.Time == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "time is required"})
		return
	}
	if req.Guests <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "guests must be > 0"})
		return
	}

	reservation := model.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Guests:    req.Guests,
		Date:      req.Date,
		Time:      req.Time,
		Status:    enum.ReservationStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := h.store.Create(r.Context(), store.Reservations, reservation); err != nil {
		log.Printf("ERROR: create reservation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, reservationResponse(reservation))
}
