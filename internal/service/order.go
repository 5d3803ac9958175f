// Package service holds order submission: turning a session's cart into a
// persisted order snapshot.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/enum"
	"github.com/bloom-cafe/api/internal/model"
	"github.com/bloom-cafe/api/internal/store"
)

// DefaultTableID is used when the session carries no table context.
const DefaultTableID = "Walk-in"

// OrderStore defines the store method needed to submit orders.
// Satisfied by any store.Store; narrow interface for testability.
type OrderStore interface {
	Create(ctx context.Context, c store.Collection, record any) (string, error)
}

// OrderService converts carts into persisted orders.
type OrderService struct {
	store OrderStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(st OrderStore) *OrderService {
	return &OrderService{store: st}
}

// Submit snapshots the session's cart into an order and persists it.
//
// An empty cart is a silent no-op: Submit returns (nil, nil) and touches
// nothing. On success the cart is cleared and the session gets a transient
// confirmation that expires on its own. On failure the cart is preserved
// exactly as it was, so the customer can retry the same submission.
//
// Line names, quantities and unit prices are copied at this moment; later
// catalog price changes or cart mutations cannot alter the placed order.
// Tax is never applied here — the stored total is pre-tax.
func (s *OrderService) Submit(ctx context.Context, sess *cart.Session) (*model.Order, error) {
	lines := sess.Cart().Lines()
	if len(lines) == 0 {
		return nil, nil
	}

	tableID := sess.TableID
	if tableID == "" {
		tableID = DefaultTableID
	}

	items := make([]model.LineItem, len(lines))
	subtotal := decimal.Zero
	for i, ln := range lines {
		items[i] = model.LineItem{
			Name:     ln.Item.Name,
			Quantity: ln.Quantity,
			Price:    ln.Item.Price,
		}
		subtotal = subtotal.Add(ln.Item.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}

	order := model.Order{
		ID:        uuid.NewString(),
		TableID:   tableID,
		Items:     items,
		Total:     subtotal,
		Status:    enum.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.store.Create(ctx, store.Orders, order); err != nil {
		// Cart deliberately untouched: the customer retries with the
		// same contents.
		return nil, fmt.Errorf("create order: %w", err)
	}

	sess.Cart().Clear()
	sess.SetConfirmation(cart.Confirmation{
		OrderID:   order.ID,
		TableID:   order.TableID,
		Subtotal:  order.Total,
		ExpiresAt: time.Now().Add(cart.ConfirmationTTL),
	})

	return &order, nil
}
