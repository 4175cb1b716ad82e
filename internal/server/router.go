package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"babashop/internal/catalog"
	cartctrl "babashop/internal/cart/controller"
	checkoutctrl "babashop/internal/checkout/controller"
	"babashop/internal/session"
)

func NewRouter(
	catalogCtrl *catalog.Controller,
	cartCtrl *cartctrl.CartController,
	checkoutCtrl *checkoutctrl.CheckoutController,
	sessions *session.Manager,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogCtrl.HandleGetCatalog)
		r.Get("/catalog/{category}", catalogCtrl.HandleGetCategory)
		r.Post("/admin/catalog/reload", catalogCtrl.HandleReload)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(sessions))

			r.Get("/cart", cartCtrl.HandleGetCart)
			r.Post("/cart/items", cartCtrl.HandleAddItem)
			r.Delete("/cart", cartCtrl.HandleClearCart)

			r.Post("/checkout", checkoutCtrl.HandleCheckout)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
