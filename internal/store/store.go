// Package store defines the narrow persistence contract the rest of the
// service is written against. Records are JSON documents; the calling code
// decides the concrete shape (see internal/model) and backends never inspect
// fields beyond id and whatever List orders by.
//
// Two backends exist: postgres (canonical, cross-device, push notification
// via LISTEN/NOTIFY) and localfile (same-device development fallback). Core
// code never branches on which one is in use.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection identifies one of the three record collections.
type Collection string

const (
	Orders          Collection = "orders"
	Reservations    Collection = "reservations"
	ContactMessages Collection = "contact_messages"
)

// Collections lists every known collection.
var Collections = []Collection{Orders, Reservations, ContactMessages}

// ErrNotFound is returned by Update and Delete when no record has the id.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract. Update merges partial fields into the
// stored document atomically per record; concurrent updates to the same
// record are last-write-wins. Subscribe registers a callback invoked after
// any change (create/update/delete, any record) to the collection — coarse
// invalidation, the observer refetches what it needs.
type Store interface {
	Create(ctx context.Context, c Collection, record any) (id string, err error)
	List(ctx context.Context, c Collection, orderBy string, ascending bool, dest any) error
	Update(ctx context.Context, c Collection, id string, fields map[string]any) error
	Delete(ctx context.Context, c Collection, id string) error
	DeleteAll(ctx context.Context, c Collection) error
	Subscribe(c Collection, fn func()) *Subscription
}

// Subscription is a handle to a change-notification registration.
type Subscription struct {
	cancel func()
}

// NewSubscription wraps a backend's cancel func. cancel must be safe to call
// once from any goroutine.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe stops notifications. Safe on a nil subscription.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// RecordID extracts the "id" field from a record's JSON form. Backends use it
// so callers stay in charge of id generation, as the contract requires
// Create to return the id of the record it persisted.
func RecordID(raw []byte) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", fmt.Errorf("decode record id: %w", err)
	}
	if probe.ID == "" {
		return "", errors.New("record has no id")
	}
	return probe.ID, nil
}

// Remarshal copies src into dest through JSON. Backends use it to hand raw
// documents back as the caller's typed slices.
func Remarshal(src, dest any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode records: %w", err)
	}
	return nil
}
