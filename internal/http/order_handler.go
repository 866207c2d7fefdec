package http

import (
	"encoding/json"
	"net/http"

	"github.com/oaktable/menu-service/internal/cart"
	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/order"
	"github.com/oaktable/menu-service/internal/session"
)

type OrderHandler struct {
	sessions *session.Manager
	metrics  *metrics.Registry
}

func NewOrderHandler(sessions *session.Manager, reg *metrics.Registry) *OrderHandler {
	return &OrderHandler{sessions: sessions, metrics: reg}
}

type orderResponse struct {
	State order.State   `json:"state"`
	Mode  string        `json:"fulfillment"`
	Cart  cart.Snapshot `json:"cart"`
	Order *order.Order  `json:"order,omitempty"`
}

func (h *OrderHandler) respondState(w http.ResponseWriter, sess *session.Session) {
	resp := orderResponse{
		State: sess.Orders.State(),
		Mode:  string(sess.Orders.Mode()),
		Cart:  sess.Cart.Snapshot(),
	}
	if ord, ok := sess.Orders.Current(); ok {
		resp.Order = &ord
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)
	h.respondState(w, sess)
}

func (h *OrderHandler) Review(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	if err := sess.Orders.Review(); err != nil {
		writeLifecycleError(w, err)
		return
	}
	h.respondState(w, sess)
}

func (h *OrderHandler) CancelReview(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	sess.Orders.CancelReview()
	h.respondState(w, sess)
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	var body struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		Fulfillment string `json:"fulfillment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	customer := order.Customer{Name: body.Name, Phone: body.Phone, Email: body.Email}
	if _, err := sess.Orders.Place(customer, order.ParseMode(body.Fulfillment)); err != nil {
		writeLifecycleError(w, err)
		return
	}
	h.metrics.OrdersPlaced.Inc()

	h.respondState(w, sess)
}

func (h *OrderHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := resolveSession(h.sessions, h.metrics, w, r)

	sess.Orders.Reset()
	h.metrics.CartMutations.WithLabelValues("clear").Inc()

	h.respondState(w, sess)
}
