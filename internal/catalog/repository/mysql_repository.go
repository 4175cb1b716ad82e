package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"babashop/internal/domain"
)

// MySQLRepository reads the catalog from a Product table. The table is
// read-only for this service; only active, non-deleted rows are served.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT category, name, price
		FROM Product
		WHERE isActive = 1
		  AND isDeleted = 0
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var price string
		if err := rows.Scan(&p.Category, &p.Name, &price); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parsing price for product %q: %w", p.Name, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
