package http

import (
	"encoding/json"
	"net/http"

	"github.com/oaktable/menu-service/internal/cart"
	"github.com/oaktable/menu-service/internal/catalog"
	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/session"
)

type CartHandler struct {
	catalog  *catalog.Catalog
	sessions *session.Manager
	metrics  *metrics.Registry
}

func NewCartHandler(cat *catalog.Catalog, sessions *session.Manager, reg *metrics.Registry) *CartHandler {
	return &CartHandler{catalog: cat, sessions: sessions, metrics: reg}
}

// cartResponse is the change notification payload: every mutation answers
// with the fresh snapshot so the page re-renders from server state.
type cartResponse struct {
	Cart cart.Snapshot `json:"cart"`
	Line *cart.Line    `json:"line,omitempty"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)
	writeJSON(w, http.StatusOK, cartResponse{Cart: sess.Cart.Snapshot()})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	var body struct {
		ItemID string `json:"itemId"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	item, ok := h.catalog.Get(body.ItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown menu item")
		return
	}

	line := sess.Cart.AddItem(cart.ItemDescriptor{
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Category:  item.Category,
		Notes:     body.Notes,
	})
	h.metrics.CartMutations.WithLabelValues("add").Inc()

	writeJSON(w, http.StatusOK, cartResponse{Cart: sess.Cart.Snapshot(), Line: &line})
}

func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	lineID := r.PathValue("lineId")
	if lineID == "" {
		writeError(w, http.StatusBadRequest, "missing line id")
		return
	}

	var body struct {
		Quantity *int    `json:"quantity"`
		Notes    *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Unknown line ids are benign no-ops: a stale page must not crash the
	// flow, it just re-renders from the returned snapshot.
	if body.Quantity != nil {
		sess.Cart.SetQuantity(lineID, *body.Quantity)
		h.metrics.CartMutations.WithLabelValues("set_quantity").Inc()
	}
	if body.Notes != nil {
		sess.Cart.SetNotes(lineID, *body.Notes)
		h.metrics.CartMutations.WithLabelValues("set_notes").Inc()
	}

	writeJSON(w, http.StatusOK, cartResponse{Cart: sess.Cart.Snapshot()})
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	lineID := r.PathValue("lineId")
	if lineID == "" {
		writeError(w, http.StatusBadRequest, "missing line id")
		return
	}

	sess.Cart.RemoveItem(lineID)
	h.metrics.CartMutations.WithLabelValues("remove").Inc()

	writeJSON(w, http.StatusOK, cartResponse{Cart: sess.Cart.Snapshot()})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	sess.Cart.Clear()
	h.metrics.CartMutations.WithLabelValues("clear").Inc()

	writeJSON(w, http.StatusOK, cartResponse{Cart: sess.Cart.Snapshot()})
}
