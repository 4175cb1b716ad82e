package domain

import "github.com/shopspring/decimal"

// Product is one catalog record. The catalog is read-only for the
// duration of a session; products are unique by (category, name).
type Product struct {
	Category string
	Name     string
	Price    decimal.Decimal
}
