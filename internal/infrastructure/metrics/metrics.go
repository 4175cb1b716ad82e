package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartItemsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Total number of line items added to carts",
	})

	CartAddsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_adds_rejected_total",
		Help: "Total number of rejected add-to-cart requests",
	})

	CartsClearedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carts_cleared_total",
		Help: "Total number of cart clear operations",
	})

	CheckoutsFormattedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_formatted_total",
		Help: "Total number of successfully formatted orders",
	})

	CheckoutValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_validation_failures_total",
		Help: "Total number of checkout validation failures",
	}, []string{"code"})

	SessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_created_total",
		Help: "Total number of shopping sessions created",
	})

	SessionsEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_evicted_total",
		Help: "Total number of idle sessions evicted",
	})

	CatalogReloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_reloads_total",
		Help: "Total number of catalog reloads",
	})
)
