package catalog

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"babashop/internal/catalog/repository"
	"babashop/internal/config"
)

// NewModule picks the catalog repository from configuration and wires
// the service and controller. db may be nil when the source is csv.
func NewModule(cfg *config.Config, db *sql.DB, logger *zap.Logger) (Service, *Controller, error) {
	var repo Repository

	switch cfg.Catalog.Source {
	case config.CatalogSourceCSV:
		repo = repository.NewCSVRepository(cfg.Catalog.Path)
	case config.CatalogSourceMySQL:
		if db == nil {
			return nil, nil, fmt.Errorf("catalog source is mysql but no database connection was provided")
		}
		repo = repository.NewMySQLRepository(db)
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	service := NewService(repo)
	controller := NewController(service, logger)

	return service, controller, nil
}
