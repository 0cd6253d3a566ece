// Package pricing derives an order summary from cart lines. It is pure
// computation; nothing here is persisted.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ateliershop/storefront/internal/cart/domain"
)

var (
	// FreeShippingThreshold exempts orders strictly above it.
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = decimal.NewFromInt(10)
	// TaxRate is applied to the subtotal.
	TaxRate = decimal.NewFromFloat(0.08)
)

type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute returns the summary for the given lines. All arithmetic is
// exact decimal; rounding happens only at display or minor-unit
// conversion.
func Compute(lines []domain.Line) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FreeShipping reports whether the shipping charge is waived.
func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

// TotalMinorUnits rounds the total to two decimals and returns it in
// minor currency units, as payment collaborators expect.
func (s Summary) TotalMinorUnits() int64 {
	return s.Total.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
