package enum

// ── Order status state machine ──
//
// Strictly forward-only, one step at a time:
//
//	pending → preparing → served
//
// served is terminal. NextOrderStatus is the single transition authority;
// nothing else in the codebase compares status strings to decide which
// action to offer.

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusServed    = "served"
)

// NextOrderStatus returns the only legal next status for the given current
// status. ok is false when current is terminal or unknown.
func NextOrderStatus(current string) (next string, ok bool) {
	switch current {
	case OrderStatusPending:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusServed, true
	}
	return "", false
}

// IsValidOrderStatus reports whether s is one of the known order statuses.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed:
		return true
	}
	return false
}

// ── Reservation lifecycle ──
//
// Reservations have no status workflow beyond existence: they are created
// confirmed and cancelled by deletion.

const ReservationStatusConfirmed = "confirmed"
