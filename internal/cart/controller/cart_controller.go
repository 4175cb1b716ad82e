package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"babashop/internal/cart"
	"babashop/internal/domain"
	"babashop/internal/dto"
	apperrors "babashop/internal/errors"
	"babashop/internal/infrastructure/metrics"
	"babashop/internal/session"
)

// Catalog is the price lookup the cart controller needs. Unit prices
// always come from the catalog, never from the request body.
type Catalog interface {
	Find(category, name string) (*domain.Product, error)
}

type CartController struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewCartController(catalog Catalog, logger *zap.Logger) *CartController {
	return &CartController{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *CartController) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := c.sessionStore(w, r.Context())
	if !ok {
		return
	}

	c.writeJSON(w, http.StatusOK, toCartResponse(store))
}

func (c *CartController) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	store, ok := c.sessionStore(w, r.Context())
	if !ok {
		return
	}

	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateAddItemRequest(req); err != nil {
		metrics.CartAddsRejectedTotal.Inc()
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	product, err := c.catalog.Find(req.Category, req.Product)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			metrics.CartAddsRejectedTotal.Inc()
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return
		}
		logger.Error("catalog lookup failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	if err := store.AddItem(product.Category, product.Name, product.Price, req.Quantity); err != nil {
		metrics.CartAddsRejectedTotal.Inc()
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		logger.Error("adding item failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	metrics.CartItemsAddedTotal.Inc()
	logger.Info("item added to cart",
		zap.String("product", product.Name),
		zap.Int("quantity", req.Quantity),
	)

	c.writeJSON(w, http.StatusOK, toCartResponse(store))
}

func (c *CartController) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	store, ok := c.sessionStore(w, r.Context())
	if !ok {
		return
	}

	store.Clear()
	metrics.CartsClearedTotal.Inc()

	c.writeJSON(w, http.StatusOK, toCartResponse(store))
}

func validateAddItemRequest(req dto.AddItemRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Category) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is required",
		})
	}

	if strings.TrimSpace(req.Product) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "product",
			Message: "product is required",
		})
	}

	if req.Quantity <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Code:    apperrors.CodeNonPositiveQuantity,
			Message: "quantity must be greater than zero",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func toCartResponse(store *cart.Store) dto.CartResponse {
	items := store.Items()

	itemDTOs := make([]dto.LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, dto.LineItemDTO{
			Category:  item.Category,
			Product:   item.Product,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	return dto.CartResponse{
		Items:  itemDTOs,
		Total:  store.Total(),
		Status: store.Status(),
	}
}

func (c *CartController) sessionStore(w http.ResponseWriter, ctx context.Context) (*cart.Store, bool) {
	store, ok := session.StoreFromContext(ctx)
	if !ok {
		c.logger.Error("no session cart on request context")
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "no session established",
		})
		return nil, false
	}
	return store, true
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CartController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CartController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
