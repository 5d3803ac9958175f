package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWithTax(t *testing.T) {
	testCases := []struct {
		subtotal string
		want     string // rounded to cents, as displayed
	}{
		{subtotal: "0", want: "0.00"},
		{subtotal: "16.48", want: "18.62"},
		{subtotal: "100.00", want: "113.00"},
		{subtotal: "2.50", want: "2.83"},
	}

	for _, tc := range testCases {
		got := WithTax(decimal.RequireFromString(tc.subtotal)).StringFixed(2)
		if got != tc.want {
			t.Errorf("WithTax(%s) = %s, want %s", tc.subtotal, got, tc.want)
		}
	}
}

func TestTaxPlusSubtotalEqualsWithTax(t *testing.T) {
	sub := decimal.RequireFromString("42.37")
	if !sub.Add(Tax(sub)).Equal(WithTax(sub)) {
		t.Fatal("Tax and WithTax disagree")
	}
}
