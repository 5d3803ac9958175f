package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/enum"
	"github.com/bloom-cafe/api/internal/handler"
	"github.com/bloom-cafe/api/internal/middleware"
	"github.com/bloom-cafe/api/internal/model"
)

// --- Mock OrderSubmitter ---

type mockOrderSubmitter struct {
	submitFn func(ctx context.Context, sess *cart.Session) (*model.Order, error)
}

func (m *mockOrderSubmitter) Submit(ctx context.Context, sess *cart.Session) (*model.Order, error) {
	return m.submitFn(ctx, sess)
}

// newOrderRouter mounts the order handler inside the session middleware the
// way the real router does, backed by a fresh manager.
func newOrderRouter(svc handler.OrderSubmitter) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Session(cart.NewManager()))
	r.Route("/orders", handler.NewOrderHandler(svc).RegisterRoutes)
	return r
}

func TestSubmitOrderSuccess(t *testing.T) {
	placed := &model.Order{
		ID:      uuid.NewString(),
		TableID: "7",
		Items: []model.LineItem{
			{Name: "Latte", Quantity: 2, Price: decimal.RequireFromString("6.99")},
			{Name: "Water", Quantity: 1, Price: decimal.RequireFromString("2.50")},
		},
		Total:     decimal.RequireFromString("16.48"),
		Status:    enum.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	svc := &mockOrderSubmitter{
		submitFn: func(ctx context.Context, sess *cart.Session) (*model.Order, error) {
			return placed, nil
		},
	}

	rec := httptest.NewRecorder()
	newOrderRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp struct {
		ID     string `json:"id"`
		Total  string `json:"total"`
		Status string `json:"status"`
		Items  []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
			Price    string `json:"price"`
		} `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != placed.ID {
		t.Errorf("expected id %s, got %s", placed.ID, resp.ID)
	}
	if resp.Total != "16.48" {
		t.Errorf("expected total 16.48, got %s", resp.Total)
	}
	if resp.Status != "pending" {
		t.Errorf("expected status pending, got %s", resp.Status)
	}
	if len(resp.Items) != 2 || resp.Items[0].Price != "6.99" {
		t.Errorf("unexpected items: %+v", resp.Items)
	}
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	svc := &mockOrderSubmitter{
		submitFn: func(ctx context.Context, sess *cart.Session) (*model.Order, error) {
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	newOrderRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}

func TestSubmitOrderStoreFailure(t *testing.T) {
	svc := &mockOrderSubmitter{
		submitFn: func(ctx context.Context, sess *cart.Session) (*model.Order, error) {
			return nil, errors.New("store unavailable")
		},
	}

	rec := httptest.NewRecorder()
	newOrderRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "order could not be placed, please try again" {
		t.Errorf("unexpected error message: %s", resp["error"])
	}
}
