package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"babashop/internal/domain"
)

// CSVRepository reads the catalog from a category,product,price file.
type CSVRepository struct {
	path string
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

func (r *CSVRepository) LoadProducts(_ context.Context) ([]domain.Product, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", r.path)
	}

	header := records[0]
	if len(header) < 3 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "category") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "product") ||
		!strings.EqualFold(strings.TrimSpace(header[2]), "price") {
		return nil, fmt.Errorf("catalog file %s: expected header category,product,price", r.path)
	}

	products := make([]domain.Product, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2 // 1-based, after header

		category := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if category == "" || name == "" {
			return nil, fmt.Errorf("catalog line %d: category and product must not be empty", line)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: parsing price: %w", line, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("catalog line %d: price must be non-negative", line)
		}

		products = append(products, domain.Product{
			Category: category,
			Name:     name,
			Price:    price,
		})
	}

	return products, nil
}
