package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
	"babashop/internal/infrastructure/metrics"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

// HandleGetCatalog returns every category with its products, in
// catalog order.
func (c *Controller) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	categories := c.service.Categories()

	resp := CatalogResponse{Categories: make([]CategoryDTO, 0, len(categories))}
	for _, name := range categories {
		products, err := c.service.ByCategory(name)
		if err != nil {
			// Category list and grouping come from the same snapshot;
			// a miss here means the snapshot changed mid-request.
			c.logger.Error("category vanished from catalog snapshot", zap.String("category", name), zap.Error(err))
			continue
		}
		resp.Categories = append(resp.Categories, CategoryDTO{
			Name:     name,
			Products: toProductDTOs(products),
		})
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "category")

	products, err := c.service.ByCategory(name)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": nfe.Message,
			})
			return
		}
		c.logger.Error("fetching category failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, CategoryResponse{
		Category: name,
		Products: toProductDTOs(products),
	})
}

// HandleReload re-reads the catalog from its backing store. This is the
// admin path for updating the product list without a restart.
func (c *Controller) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Load(r.Context()); err != nil {
		c.logger.Error("catalog reload failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "catalog reload failed",
		})
		return
	}

	metrics.CatalogReloadsTotal.Inc()

	categories := c.service.Categories()
	productCount := 0
	for _, name := range categories {
		if products, err := c.service.ByCategory(name); err == nil {
			productCount += len(products)
		}
	}

	c.logger.Info("catalog reloaded",
		zap.Int("products", productCount),
		zap.Int("categories", len(categories)),
	)

	c.writeJSON(w, http.StatusOK, ReloadResponse{
		ProductCount:  productCount,
		CategoryCount: len(categories),
	})
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ProductDTO{
			Category: p.Category,
			Name:     p.Name,
			Price:    p.Price,
		})
	}
	return dtos
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
