package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"babashop/internal/cart"
	"babashop/internal/domain"
	"babashop/internal/dto"
	apperrors "babashop/internal/errors"
	"babashop/internal/session"
)

type mockCatalog struct {
	FindFunc func(category, name string) (*domain.Product, error)
}

func (m *mockCatalog) Find(category, name string) (*domain.Product, error) {
	return m.FindFunc(category, name)
}

func teaCatalog() *mockCatalog {
	return &mockCatalog{
		FindFunc: func(category, name string) (*domain.Product, error) {
			if category == "Beverages" && name == "Tea" {
				return &domain.Product{Category: category, Name: name, Price: decimal.NewFromInt(10)}, nil
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %q not found in category %q", name, category))
		},
	}
}

func doRequest(t *testing.T, ctrl *CartController, store *cart.Store, method, body string, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/api/v1/cart", strings.NewReader(body))
	req = req.WithContext(session.WithStore(req.Context(), store))
	rec := httptest.NewRecorder()

	handler(rec, req)
	return rec
}

func TestHandleAddItem_Success(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()

	rec := doRequest(t, ctrl, store, http.MethodPost,
		`{"category":"Beverages","product":"Tea","quantity":2}`, ctrl.HandleAddItem)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Tea", resp.Items[0].Product)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, domain.CartStatusHasItems, resp.Status)
}

func TestHandleAddItem_NonPositiveQuantity(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()

	rec := doRequest(t, ctrl, store, http.MethodPost,
		`{"category":"Beverages","product":"Tea","quantity":0}`, ctrl.HandleAddItem)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeNonPositiveQuantity)
	assert.Empty(t, store.Items())
}

func TestHandleAddItem_UnknownProduct(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()

	rec := doRequest(t, ctrl, store, http.MethodPost,
		`{"category":"Beverages","product":"Mocha","quantity":1}`, ctrl.HandleAddItem)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, store.Items())
}

func TestHandleAddItem_InvalidJSON(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()

	rec := doRequest(t, ctrl, store, http.MethodPost, `{not json`, ctrl.HandleAddItem)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestHandleAddItem_PriceComesFromCatalog(t *testing.T) {
	// The request body carries no price; the catalog is authoritative.
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()

	rec := doRequest(t, ctrl, store, http.MethodPost,
		`{"category":"Beverages","product":"Tea","quantity":1,"price":9999}`, ctrl.HandleAddItem)

	require.Equal(t, http.StatusOK, rec.Code)
	items := store.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(10)))
}

func TestHandleGetCart(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()
	require.NoError(t, store.AddItem("Beverages", "Tea", decimal.NewFromInt(10), 2))

	rec := doRequest(t, ctrl, store, http.MethodGet, "", ctrl.HandleGetCart)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(20)))
}

func TestHandleClearCart(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())
	store := cart.NewStore()
	require.NoError(t, store.AddItem("Beverages", "Tea", decimal.NewFromInt(10), 2))

	rec := doRequest(t, ctrl, store, http.MethodDelete, "", ctrl.HandleClearCart)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Items())

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.CartStatusEmpty, resp.Status)
	assert.True(t, resp.Total.IsZero())
}

func TestHandlers_NoSession(t *testing.T) {
	ctrl := NewCartController(teaCatalog(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleGetCart(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
