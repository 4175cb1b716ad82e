// Package pricing holds the pure money arithmetic for the cart.
// Everything here is deterministic and side-effect free.
package pricing

import (
	"github.com/shopspring/decimal"

	"babashop/internal/domain"
)

// Subtotal computes unitPrice * quantity in decimal arithmetic.
func Subtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Total sums the subtotals of all line items. An empty cart totals zero.
func Total(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}
