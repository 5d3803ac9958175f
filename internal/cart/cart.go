// Package cart holds the in-memory, session-scoped cart engine and the
// session manager that owns one cart per browsing session.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bloom-cafe/api/internal/catalog"
)

// Line is one cart line. At most one line exists per item name; the catalog
// item is referenced so the line always reflects the current menu price
// until the order is submitted (snapshotting happens at submission).
type Line struct {
	Item     catalog.Item
	Quantity int
}

// Cart is a mutable selection of menu items. All operations are total: they
// never fail, they just leave the cart in the nearest valid state. Every
// mutation notifies registered listeners synchronously, last write wins.
type Cart struct {
	mu        sync.Mutex
	lines     []Line
	listeners []func()
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// OnChange registers fn to run after every mutation. Listeners run on the
// mutating goroutine and must not block.
func (c *Cart) OnChange(fn func()) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// AddItem increments the line for the item, inserting it at quantity 1 when
// absent.
func (c *Cart) AddItem(item catalog.Item) {
	c.mu.Lock()
	found := false
	for i := range c.lines {
		if c.lines[i].Item.Name == item.Name {
			c.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	}
	c.mu.Unlock()
	c.notify()
}

// RemoveItem deletes the line for name. No-op when absent.
func (c *Cart) RemoveItem(name string) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Item.Name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// UpdateQuantity adjusts the line for name by delta, clamping at zero and
// removing the line when it reaches zero. No-op when absent.
func (c *Cart) UpdateQuantity(name string, delta int) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Item.Name != name {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = q
		}
		break
	}
	c.mu.Unlock()
	c.notify()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
	c.notify()
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Subtotal sums price × quantity over the current lines. Computed on demand,
// never cached.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, ln := range c.lines {
		total = total.Add(ln.Item.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}

// notify runs listeners outside the cart lock so a listener may read the
// cart without deadlocking.
func (c *Cart) notify() {
	c.mu.Lock()
	fns := make([]func(), len(c.listeners))
	copy(fns, c.listeners)
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
