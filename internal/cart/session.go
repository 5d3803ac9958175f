package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfirmationTTL is how long an "order placed" confirmation stays visible
// before expiring on its own.
const ConfirmationTTL = 5 * time.Second

// Confirmation is the transient notice shown after a successful order
// submission. It expires without requiring dismissal.
type Confirmation struct {
	OrderID   string          `json:"order_id"`
	TableID   string          `json:"table_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Session is one browsing context: a cart, the table identifier captured
// once at session start, and the pending order confirmation if any.
type Session struct {
	ID        string
	TableID   string
	CreatedAt time.Time

	cart *Cart

	mu           sync.Mutex
	confirmation *Confirmation
}

// Cart returns the session's cart.
func (s *Session) Cart() *Cart {
	return s.cart
}

// SetConfirmation replaces the pending confirmation.
func (s *Session) SetConfirmation(c Confirmation) {
	s.mu.Lock()
	s.confirmation = &c
	s.mu.Unlock()
}

// Confirmation returns the pending confirmation, dropping it once expired.
func (s *Session) Confirmation() (Confirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmation == nil {
		return Confirmation{}, false
	}
	if time.Now().After(s.confirmation.ExpiresAt) {
		s.confirmation = nil
		return Confirmation{}, false
	}
	return *s.confirmation, true
}

// Manager tracks sessions by id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new session. tableID comes from the table query parameter
// present when the session began; it is read exactly once and may be empty
// (submission falls back to the walk-in default).
func (m *Manager) Create(tableID string) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		TableID:   tableID,
		CreatedAt: time.Now().UTC(),
		cart:      New(),
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}
