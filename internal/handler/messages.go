package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bloom-cafe/api/internal/model"
	"github.com/bloom-cafe/api/internal/store"
)

// MessageStore defines the store methods needed by the contact handler.
// Satisfied by any store.Store; narrow interface for testability.
type MessageStore interface {
	Create(ctx context.Context, c store.Collection, record any) (string, error)
}

// MessageHandler handles the public contact form endpoint.
type MessageHandler struct {
	store MessageStore
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(st MessageStore) *MessageHandler {
	return &MessageHandler{store: st}
}

// RegisterRoutes registers contact endpoints on the given Chi router.
func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
}

type createMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles POST /messages. Messages start unread.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
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
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	message := model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := h.store.Create(r.Context(), store.ContactMessages, message); err != nil {
		log.Printf("ERROR: create contact message: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse(message))
}
