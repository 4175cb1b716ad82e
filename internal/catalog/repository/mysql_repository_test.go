package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babashop/internal/testutil"
)

// Unit Tests

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestMySQLRepository_LoadProducts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	_, err := db.Exec(`
		INSERT INTO Product (category, name, price, isActive, isDeleted)
		VALUES ('Beverages', 'Tea', 10.00, 1, 0),
		       ('Beverages', 'Coffee', 15.50, 1, 0),
		       ('Snacks', 'Chips', 20.00, 1, 0),
		       ('Snacks', 'Old Chips', 5.00, 0, 0),
		       ('Snacks', 'Gone Chips', 5.00, 1, 1)
	`)
	require.NoError(t, err)

	products, err := repo.LoadProducts(context.Background())
	require.NoError(t, err)

	// Inactive and deleted rows are not served.
	require.Len(t, products, 3)
	assert.Equal(t, "Tea", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Coffee", products[1].Name)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, "Chips", products[2].Name)
}

func TestMySQLRepository_EmptyTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	products, err := repo.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
