package http

import (
	"net/http"

	"github.com/oaktable/menu-service/internal/catalog"
	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/search"
)

type MenuHandler struct {
	catalog *catalog.Catalog
	metrics *metrics.Registry
}

func NewMenuHandler(cat *catalog.Catalog, reg *metrics.Registry) *MenuHandler {
	return &MenuHandler{catalog: cat, metrics: reg}
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"restaurant": h.catalog.Restaurant(),
		"categories": h.catalog.Categories(),
		"items":      h.catalog.Items(),
	})
}

func (h *MenuHandler) Search(w http.ResponseWriter, r *http.Request) {
	res := search.Run(h.catalog.Items(), r.URL.Query().Get("q"))
	if res.Active {
		h.metrics.SearchQueries.Inc()
	}
	writeJSON(w, http.StatusOK, res)
}
