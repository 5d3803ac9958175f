// Package pricing is the single home for display-time tax math. Persisted
// order totals are always pre-tax; taxed amounts are derived wherever a total
// is shown and never written back.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is the flat rate applied when displaying totals.
var TaxRate = decimal.RequireFromString("0.13")

// Tax returns the tax portion for a pre-tax subtotal.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// WithTax returns subtotal plus tax.
func WithTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(Tax(subtotal))
}
