package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/oaktable/menu-service/internal/catalog"
	"github.com/oaktable/menu-service/internal/config"
	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/middleware"
	"github.com/oaktable/menu-service/internal/session"
)

type Deps struct {
	Logger   *zap.Logger
	Cfg      config.Config
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Metrics  *metrics.Registry
}

func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	// Menu + search
	menu := NewMenuHandler(d.Catalog, d.Metrics)
	mux.HandleFunc("GET /api/menu", menu.GetMenu)
	mux.HandleFunc("GET /api/menu/search", menu.Search)

	// Cart
	cartHandler := NewCartHandler(d.Catalog, d.Sessions, d.Metrics)
	mux.HandleFunc("GET /api/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /api/cart/items/{lineId}", cartHandler.UpdateLine)
	mux.HandleFunc("DELETE /api/cart/items/{lineId}", cartHandler.RemoveLine)
	mux.HandleFunc("DELETE /api/cart", cartHandler.ClearCart)

	// Order lifecycle
	orderHandler := NewOrderHandler(d.Sessions, d.Metrics)
	mux.HandleFunc("GET /api/order", orderHandler.GetState)
	mux.HandleFunc("POST /api/order/review", orderHandler.Review)
	mux.HandleFunc("POST /api/order/cancel", orderHandler.CancelReview)
	mux.HandleFunc("POST /api/order/place", orderHandler.Place)
	mux.HandleFunc("POST /api/order/reset", orderHandler.Reset)

	// Page + assets, with 404 fallback to the page
	mux.Handle("/", &StaticHandler{})

	// Middlewares (outer -> inner)
	var h http.Handler = mux
	h = middleware.Metrics(d.Metrics)(h)
	h = middleware.Recover(d.Logger)(h)
	h = middleware.CORS(d.Cfg.CORSAllowOrigins)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Logging(d.Logger)(h)

	return h
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "menu-service"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
