package cart_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bloom-cafe/api/internal/cart"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := cart.NewManager()

	sess := m.Create("12")
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "12", sess.TableID)
	require.NotNil(t, sess.Cart())

	got, ok := m.Get(sess.ID)
	require.True(t, ok)
	require.Same(t, sess, got)

	_, ok = m.Get("unknown")
	require.False(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := cart.NewManager()
	a := m.Create("")
	b := m.Create("")

	a.Cart().AddItem(mustItem(t, "Latte"))
	require.True(t, b.Cart().IsEmpty(), "carts must not be shared between sessions")
}

func TestConfirmationExpires(t *testing.T) {
	m := cart.NewManager()
	sess := m.Create("")

	sess.SetConfirmation(cart.Confirmation{
		OrderID:   "o1",
		TableID:   "Walk-in",
		Subtotal:  decimal.RequireFromString("16.48"),
		ExpiresAt: time.Now().Add(50 * time.Millisecond),
	})

	got, ok := sess.Confirmation()
	require.True(t, ok)
	require.Equal(t, "o1", got.OrderID)

	time.Sleep(80 * time.Millisecond)
	_, ok = sess.Confirmation()
	require.False(t, ok, "confirmation must expire without dismissal")
}
