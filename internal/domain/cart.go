package domain

import "github.com/shopspring/decimal"

// LineItem is one cart entry. Subtotal is computed when the item is
// appended and never mutated independently of UnitPrice and Quantity.
type LineItem struct {
	Category  string
	Product   string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// CustomerInfo is the transient checkout identity. It is not part of
// the cart and is never stored.
type CustomerInfo struct {
	Name  string
	Phone string
}

const (
	CartStatusEmpty     = "EMPTY"
	CartStatusHasItems  = "HAS_ITEMS"
	CartStatusReady     = "READY"
	CartStatusSubmitted = "SUBMITTED"
)
