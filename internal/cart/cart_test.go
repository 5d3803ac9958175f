package cart_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/catalog"
)

func mustItem(t *testing.T, name string) catalog.Item {
	t.Helper()
	it, ok := catalog.ByName(name)
	require.True(t, ok, "menu item %q", name)
	return it
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := cart.New()
	latte := mustItem(t, "Latte")

	c.AddItem(latte)
	c.AddItem(latte)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Latte", lines[0].Item.Name)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := cart.New()
	c.AddItem(mustItem(t, "Latte"))
	c.AddItem(mustItem(t, "Water"))

	c.RemoveItem("Latte")
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Water", lines[0].Item.Name)

	// Removing an absent item is a no-op.
	c.RemoveItem("Latte")
	require.Len(t, c.Lines(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := cart.New()
	c.AddItem(mustItem(t, "Latte"))

	c.UpdateQuantity("Latte", 2)
	require.Equal(t, 3, c.Lines()[0].Quantity)

	// Clamped at zero: the line is removed, not left at a negative count.
	c.UpdateQuantity("Latte", -5)
	require.Empty(t, c.Lines())

	// Absent name is a no-op.
	c.UpdateQuantity("Latte", 1)
	require.Empty(t, c.Lines())
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.AddItem(mustItem(t, "Latte"))
	c.AddItem(mustItem(t, "Water"))

	c.Clear()
	require.Empty(t, c.Lines())
	require.True(t, c.IsEmpty())
	require.True(t, c.Subtotal().IsZero())
}

func TestSubtotalScenario(t *testing.T) {
	// Latte ×2 at 6.99 plus Water ×1 at 2.50 → 16.48.
	c := cart.New()
	latte := mustItem(t, "Latte")
	c.AddItem(latte)
	c.AddItem(latte)
	c.AddItem(mustItem(t, "Water"))

	require.Equal(t, "16.48", c.Subtotal().StringFixed(2))
}

func TestChangeListeners(t *testing.T) {
	c := cart.New()
	latte := mustItem(t, "Latte")

	var calls int
	var lastLen int
	c.OnChange(func() {
		calls++
		// Listeners observe the post-mutation state synchronously.
		lastLen = len(c.Lines())
	})

	c.AddItem(latte)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, lastLen)

	c.UpdateQuantity("Latte", 1)
	c.RemoveItem("Latte")
	c.Clear()
	require.Equal(t, 4, calls)
	require.Zero(t, lastLen)
}

// TestInvariantsUnderRandomOps drives the cart with random operation
// sequences and checks after every step that no item name repeats, no line
// has quantity ≤ 0, and the subtotal matches an independent recomputation.
func TestInvariantsUnderRandomOps(t *testing.T) {
	items := []catalog.Item{
		mustItem(t, "Latte"),
		mustItem(t, "Water"),
		mustItem(t, "Hummus"),
		mustItem(t, "Falafel"),
		mustItem(t, "Espresso"),
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	c := cart.New()
	want := make(map[string]int) // reference model: name → quantity

	for step := 0; step < 2000; step++ {
		it := items[rng.Intn(len(items))]
		switch rng.Intn(4) {
		case 0:
			c.AddItem(it)
			want[it.Name]++
		case 1:
			c.RemoveItem(it.Name)
			delete(want, it.Name)
		case 2:
			delta := rng.Intn(7) - 3
			c.UpdateQuantity(it.Name, delta)
			if q, ok := want[it.Name]; ok {
				if q+delta <= 0 {
					delete(want, it.Name)
				} else {
					want[it.Name] = q + delta
				}
			}
		case 3:
			if rng.Intn(20) == 0 {
				c.Clear()
				want = make(map[string]int)
			}
		}

		lines := c.Lines()
		seen := make(map[string]bool, len(lines))
		expected := decimal.Zero
		for _, ln := range lines {
			require.False(t, seen[ln.Item.Name], "step %d: duplicate line %q", step, ln.Item.Name)
			seen[ln.Item.Name] = true
			require.Greater(t, ln.Quantity, 0, "step %d: non-positive quantity on %q", step, ln.Item.Name)
			require.Equal(t, want[ln.Item.Name], ln.Quantity, "step %d: quantity drift on %q", step, ln.Item.Name)
			expected = expected.Add(ln.Item.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
		}
		require.Len(t, lines, len(want), "step %d: line count drift", step)
		require.True(t, c.Subtotal().Equal(expected), "step %d: subtotal mismatch", step)
	}
}
