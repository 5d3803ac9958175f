// Package model defines the record types persisted by the store. JSON field
// names are the wire format shared by every store backend, so records written
// by one backend read back identically from another.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single line of a placed order. Name, quantity and unit price
// are snapshots taken at submission time; later catalog price changes never
// alter a placed order.
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a placed customer order. Total is the pre-tax subtotal frozen at
// submission; taxed totals are always derived at display time, never stored.
// Status moves pending → preparing → served and nothing else is ever mutated.
type Order struct {
	ID        string          `json:"id"`
	TableID   string          `json:"table_id"`
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// Reservation is a table booking. Date and Time keep the form's string
// representation (YYYY-MM-DD and HH:MM) so soonest-first ordering is a plain
// field sort. Staff cancel a reservation by deleting it.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Guests    int       `json:"guests"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a contact-form submission. IsRead flips false → true
// exactly once via staff action and never reverts.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
