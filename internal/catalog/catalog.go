// Package catalog holds the static Bloom menu. The catalog is loaded once at
// package init and never mutated; prices only enter an order as snapshots at
// submission time.
package catalog

import "github.com/shopspring/decimal"

// Item is a single orderable menu entry.
type Item struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// byName indexes items for cart lookups. A few names repeat across categories
// (e.g. "Mango" exists as a milkshake, a smoothie and a mojito); the first
// occurrence wins, which is what the cart keys on.
var byName = func() map[string]Item {
	idx := make(map[string]Item, len(menu))
	for _, it := range menu {
		if _, exists := idx[it.Name]; !exists {
			idx[it.Name] = it
		}
	}
	return idx
}()

// Items returns a copy of the full menu in display order.
func Items() []Item {
	out := make([]Item, len(menu))
	copy(out, menu)
	return out
}

// ByName looks up an item by its exact name.
func ByName(name string) (Item, bool) {
	it, ok := byName[name]
	return it, ok
}

// Categories returns the menu categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

func item(name, category, price string) Item {
	return Item{Name: name, Category: category, Price: decimal.RequireFromString(price)}
}
