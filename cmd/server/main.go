package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	cartctrl "babashop/internal/cart/controller"
	"babashop/internal/catalog"
	checkoutpkg "babashop/internal/checkout"
	checkoutctrl "babashop/internal/checkout/controller"
	"babashop/internal/checkout/usecase"
	"babashop/internal/commons"
	"babashop/internal/config"
	"babashop/internal/infrastructure/logger"
	"babashop/internal/infrastructure/mysql"
	"babashop/internal/server"
	"babashop/internal/session"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var db *sql.DB
	if cfg.Catalog.Source == config.CatalogSourceMySQL {
		db, err = mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")
	}

	catalogSvc, catalogCtrl, err := catalog.NewModule(cfg, db, zapLogger)
	if err != nil {
		zapLogger.Fatal("wiring catalog module", zap.Error(err))
	}
	if err := catalogSvc.Load(context.Background()); err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}
	zapLogger.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("categories", len(catalogSvc.Categories())),
	)

	sessions := session.NewManager(cfg.Session.TTL, zapLogger)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.Session.SweepInterval)

	formatter := checkoutpkg.NewFormatter(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Recipient)
	checkoutUC := usecase.NewCheckoutUseCase(formatter, cfg.WhatsApp.QRSize, zapLogger)

	cartController := cartctrl.NewCartController(catalogSvc, zapLogger)
	checkoutController := checkoutctrl.NewCheckoutController(checkoutUC, zapLogger)

	router := server.NewRouter(catalogCtrl, cartController, checkoutController, sessions, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers an explicit YAML file, falling back to environment
// variables with defaults.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
