// Package cart owns the per-session line-item state. A Store is created
// per session and is never shared across sessions; handlers receive it
// explicitly instead of reaching for ambient state.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
	"babashop/internal/pricing"
)

// Store methods are safe for concurrent use: requests carrying the
// same session cookie may run in parallel and share one Store.
type Store struct {
	mu        sync.Mutex
	items     []domain.LineItem
	submitted bool
}

func NewStore() *Store {
	return &Store{}
}

// AddItem appends a new line item with its computed subtotal. Repeat
// adds of the same product stay separate entries; lines are never
// merged. A non-positive quantity is rejected and the cart is left
// unchanged.
func (s *Store) AddItem(category, product string, unitPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return apperrors.NewValidationError("quantity must be positive", apperrors.ValidationDetail{
			Field:   "quantity",
			Code:    apperrors.CodeNonPositiveQuantity,
			Message: "quantity must be greater than zero",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, domain.LineItem{
		Category:  category,
		Product:   product,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  pricing.Subtotal(unitPrice, quantity),
	})
	s.submitted = false

	return nil
}

// Clear replaces the cart with an empty one. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.submitted = false
}

// Items returns a snapshot of the cart in insertion order. Mutating the
// returned slice does not affect the store.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pricing.Total(s.items)
}

// MarkSubmitted records that an order was formatted from the current
// contents. The cart is deliberately not cleared; any later mutation
// drops the flag because the cart no longer matches the transcript.
func (s *Store) MarkSubmitted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 {
		s.submitted = true
	}
}

func (s *Store) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case len(s.items) == 0:
		return domain.CartStatusEmpty
	case s.submitted:
		return domain.CartStatusSubmitted
	default:
		return domain.CartStatusHasItems
	}
}
