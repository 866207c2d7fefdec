package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's counters behind a private prometheus
// registry so tests can build isolated instances.
type Registry struct {
	reg *prometheus.Registry

	CartMutations  *prometheus.CounterVec
	OrdersPlaced   prometheus.Counter
	SearchQueries  prometheus.Counter
	SessionsOpened prometheus.Counter
	RequestSec     *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_orders_placed_total",
		Help: "Orders confirmed.",
	})
	searchQueries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_search_queries_total",
		Help: "Non-empty search queries evaluated.",
	})
	sessionsOpened := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menu_sessions_opened_total",
		Help: "Visitor sessions created.",
	})
	requestSec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "menu_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	r := prometheus.NewRegistry()
	r.MustRegister(cartMutations, ordersPlaced, searchQueries, sessionsOpened, requestSec)

	return &Registry{
		reg:            r,
		CartMutations:  cartMutations,
		OrdersPlaced:   ordersPlaced,
		SearchQueries:  searchQueries,
		SessionsOpened: sessionsOpened,
		RequestSec:     requestSec,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
