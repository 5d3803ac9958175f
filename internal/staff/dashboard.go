// Package staff maintains the dashboard read model: a locally coherent copy
// of orders, reservations and contact messages that staff observe and act on.
package staff

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bloom-cafe/api/internal/enum"
	"github.com/bloom-cafe/api/internal/model"
	"github.com/bloom-cafe/api/internal/store"
)

// Errors returned by dashboard actions.
var (
	ErrNotFound             = errors.New("record not in view")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// reloadTimeout bounds the reload a change notification triggers.
const reloadTimeout = 5 * time.Second

// Store defines the store methods the dashboard needs.
// Satisfied by any store.Store; narrow interface for testability.
type Store interface {
	List(ctx context.Context, c store.Collection, orderBy string, ascending bool, dest any) error
	Update(ctx context.Context, c store.Collection, id string, fields map[string]any) error
	Delete(ctx context.Context, c store.Collection, id string) error
	DeleteAll(ctx context.Context, c store.Collection) error
	Subscribe(c store.Collection, fn func()) *store.Subscription
}

// Dashboard is the staff read model. Any change notification triggers a full
// reload of that collection — coarse invalidation, cheap at this scale, and
// a reload always wins over any optimistic patch applied in the meantime.
type Dashboard struct {
	store    Store
	onReload func(store.Collection)

	mu           sync.RWMutex
	orders       []model.Order
	reservations []model.Reservation
	messages     []model.ContactMessage

	subs []*store.Subscription
}

// New creates a dashboard over the given store. onReload, if non-nil, runs
// after every completed reload (the server uses it to push refresh hints to
// connected staff clients).
func New(st Store, onReload func(store.Collection)) *Dashboard {
	return &Dashboard{store: st, onReload: onReload}
}

// Start performs the initial full load of all three collections and
// subscribes to their change feeds.
func (d *Dashboard) Start(ctx context.Context) error {
	for _, c := range store.Collections {
		if err := d.reload(ctx, c); err != nil {
			return err
		}
	}
	for _, c := range store.Collections {
		c := c
		d.subs = append(d.subs, d.store.Subscribe(c, func() {
			ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
			defer cancel()
			if err := d.reload(ctx, c); err != nil {
				// Background sync failure: stay on last-known-good,
				// the next notification retries.
				log.Printf("ERROR: reload %s: %v", c, err)
			}
		}))
	}
	return nil
}

// Stop cancels the change subscriptions.
func (d *Dashboard) Stop() {
	for _, sub := range d.subs {
		sub.Unsubscribe()
	}
	d.subs = nil
}

// reload replaces a collection's local slice with the store's current
// contents: orders newest-first, reservations soonest-first, messages
// newest-first.
func (d *Dashboard) reload(ctx context.Context, c store.Collection) error {
	switch c {
	case store.Orders:
		var orders []model.Order
		if err := d.store.List(ctx, c, "created_at", false, &orders); err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		d.mu.Lock()
		d.orders = orders
		d.mu.Unlock()
	case store.Reservations:
		var reservations []model.Reservation
		if err := d.store.List(ctx, c, "date", true, &reservations); err != nil {
			return fmt.Errorf("list reservations: %w", err)
		}
		d.mu.Lock()
		d.reservations = reservations
		d.mu.Unlock()
	case store.ContactMessages:
		var messages []model.ContactMessage
		if err := d.store.List(ctx, c, "created_at", false, &messages); err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		d.mu.Lock()
		d.messages = messages
		d.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", c)
	}

	if d.onReload != nil {
		d.onReload(c)
	}
	return nil
}

// --- Read side ---

// Orders returns the current orders, newest first.
func (d *Dashboard) Orders() []model.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Order, len(d.orders))
	copy(out, d.orders)
	return out
}

// Reservations returns the current reservations, soonest first.
func (d *Dashboard) Reservations() []model.Reservation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.Reservation, len(d.reservations))
	copy(out, d.reservations)
	return out
}

// Messages returns the current contact messages, newest first.
func (d *Dashboard) Messages() []model.ContactMessage {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.ContactMessage, len(d.messages))
	copy(out, d.messages)
	return out
}

// ActiveOrderCount counts orders not yet served. Derived, never stored.
func (d *Dashboard) ActiveOrderCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, o := range d.orders {
		if o.Status != enum.OrderStatusServed {
			n++
		}
	}
	return n
}

// UnreadMessageCount counts unread contact messages. Derived, never stored.
func (d *Dashboard) UnreadMessageCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, m := range d.messages {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// --- Mutations ---

// AdvanceOrder moves an order one step forward. The single legal next state
// comes from enum.NextOrderStatus; advancing a served order is a no-op. The
// local view flips optimistically before the store mutation is issued; if
// the mutation fails the optimistic patch is discarded by a forced reload,
// never left silently inconsistent.
func (d *Dashboard) AdvanceOrder(ctx context.Context, id string) (model.Order, error) {
	d.mu.Lock()
	idx := -1
	for i := range d.orders {
		if d.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		d.mu.Unlock()
		return model.Order{}, ErrNotFound
	}
	next, ok := enum.NextOrderStatus(d.orders[idx].Status)
	if !ok {
		current := d.orders[idx]
		d.mu.Unlock()
		return current, nil
	}
	d.orders[idx].Status = next // optimistic
	updated := d.orders[idx]
	d.mu.Unlock()

	if err := d.store.Update(ctx, store.Orders, id, map[string]any{"status": next}); err != nil {
		d.forceReload(store.Orders)
		return model.Order{}, fmt.Errorf("advance order: %w", err)
	}
	return updated, nil
}

// MarkMessageRead flips a message to read. One-way and idempotent: marking
// an already-read message returns without touching the store.
func (d *Dashboard) MarkMessageRead(ctx context.Context, id string) error {
	d.mu.Lock()
	idx := -1
	for i := range d.messages {
		if d.messages[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		d.mu.Unlock()
		return ErrNotFound
	}
	if d.messages[idx].IsRead {
		d.mu.Unlock()
		return nil
	}
	d.messages[idx].IsRead = true // optimistic
	d.mu.Unlock()

	if err := d.store.Update(ctx, store.ContactMessages, id, map[string]any{"is_read": true}); err != nil {
		d.forceReload(store.ContactMessages)
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// DeleteReservation cancels a reservation by removing it.
func (d *Dashboard) DeleteReservation(ctx context.Context, id string) error {
	if err := d.store.Delete(ctx, store.Reservations, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete reservation: %w", err)
	}

	d.mu.Lock()
	for i := range d.reservations {
		if d.reservations[i].ID == id {
			d.reservations = append(d.reservations[:i], d.reservations[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
	return nil
}

// ClearOrders deletes every order. Irreversible, so it refuses to run
// without explicit confirmation.
func (d *Dashboard) ClearOrders(ctx context.Context, confirm bool) error {
	return d.clear(ctx, store.Orders, confirm)
}

// ClearReservations deletes every reservation. Requires confirmation.
func (d *Dashboard) ClearReservations(ctx context.Context, confirm bool) error {
	return d.clear(ctx, store.Reservations, confirm)
}

// ClearMessages deletes every contact message. Requires confirmation.
func (d *Dashboard) ClearMessages(ctx context.Context, confirm bool) error {
	return d.clear(ctx, store.ContactMessages, confirm)
}

func (d *Dashboard) clear(ctx context.Context, c store.Collection, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := d.store.DeleteAll(ctx, c); err != nil {
		return fmt.Errorf("clear %s: %w", c, err)
	}

	d.mu.Lock()
	switch c {
	case store.Orders:
		d.orders = nil
	case store.Reservations:
		d.reservations = nil
	case store.ContactMessages:
		d.messages = nil
	}
	d.mu.Unlock()
	return nil
}

// forceReload discards local state in favor of the store after a failed
// mutation. Best effort: if the reload itself fails the next change
// notification converges the view.
func (d *Dashboard) forceReload(c store.Collection) {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()
	if err := d.reload(ctx, c); err != nil {
		log.Printf("ERROR: reload %s after failed mutation: %v", c, err)
	}
}
