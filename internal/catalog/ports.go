package catalog

import (
	"context"

	"babashop/internal/domain"
)

// Repository loads the full ordered product list from the backing
// store. The catalog is read-only for the core; which store backs it
// (CSV file or database table) is deployment configuration.
type Repository interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
}

type Service interface {
	Load(ctx context.Context) error
	Categories() []string
	ByCategory(name string) ([]domain.Product, error)
	Find(category, name string) (*domain.Product, error)
}
