package catalog

import (
	"context"
	"fmt"
	"sync"

	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
)

type catalogService struct {
	repo Repository

	mu         sync.RWMutex
	products   []domain.Product
	categories []string
	byCategory map[string][]domain.Product
	index      map[string]domain.Product
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

// Load reads the catalog from the repository and replaces the cached
// view atomically. Called once at startup and again on admin reload.
func (s *catalogService) Load(ctx context.Context) error {
	products, err := s.repo.LoadProducts(ctx)
	if err != nil {
		return err
	}

	categories := make([]string, 0)
	byCategory := make(map[string][]domain.Product)
	index := make(map[string]domain.Product, len(products))

	for _, p := range products {
		if _, seen := byCategory[p.Category]; !seen {
			categories = append(categories, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
		index[productKey(p.Category, p.Name)] = p
	}

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.byCategory = byCategory
	s.index = index
	s.mu.Unlock()

	return nil
}

// Categories returns category names in first-seen catalog order, the
// order the presentation layer renders them as tabs.
func (s *catalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

func (s *catalogService) ByCategory(name string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products, ok := s.byCategory[name]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %q not found", name))
	}

	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}

func (s *catalogService) Find(category, name string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.index[productKey(category, name)]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %q not found in category %q", name, category))
	}
	return &p, nil
}

func productKey(category, name string) string {
	return category + "\x00" + name
}
