package order

import (
	"strings"
	"sync"
	"time"

	"github.com/oaktable/menu-service/internal/cart"
)

// State is the current phase of the ordering flow.
type State string

const (
	StateBrowsing   State = "browsing"
	StateReviewing  State = "reviewing"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// Validation failures surfaced to the user. None of them mutates state.
var (
	ErrEmptyCart    = &ValidationError{Code: "empty_cart", Message: "your cart is empty, add some items before reviewing your order"}
	ErrMissingName  = &ValidationError{Code: "missing_name", Message: "please enter your name"}
	ErrMissingPhone = &ValidationError{Code: "missing_phone", Message: "please enter your phone number"}
	ErrNotReviewing = &ValidationError{Code: "not_reviewing", Message: "review your order before placing it"}
	ErrOrderPending = &ValidationError{Code: "order_pending", Message: "start a new order before reviewing again"}
)

// ValidationError is a recoverable, user-facing failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// firstOrderNumber is where the per-session counter starts.
const firstOrderNumber = 1000

// Lifecycle is the state machine governing review, submission, and reset.
// It duplicates no cart state: totals are read from the store on demand.
type Lifecycle struct {
	store *cart.Store

	mu         sync.Mutex
	state      State
	nextNumber int
	current    *Order
	mode       FulfillmentMode
}

func NewLifecycle(store *cart.Store) *Lifecycle {
	return &Lifecycle{
		store:      store,
		state:      StateBrowsing,
		nextNumber: firstOrderNumber,
		mode:       ModePickup,
	}
}

// State reports the current lifecycle phase.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Current returns the confirmed order, if any.
func (l *Lifecycle) Current() (Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return Order{}, false
	}
	return *l.current, true
}

// Review moves browsing to reviewing. An empty cart is rejected with a
// user-facing validation message and no state change. Reviewing again while
// already reviewing is harmless; a confirmed order must be reset first.
func (l *Lifecycle) Review() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == StateConfirmed {
		return ErrOrderPending
	}
	if l.store.ItemCount() == 0 {
		return ErrEmptyCart
	}
	l.state = StateReviewing
	return nil
}

// CancelReview returns to browsing without placing an order. The cart keeps
// its contents.
func (l *Lifecycle) CancelReview() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateReviewing {
		l.state = StateBrowsing
	}
}

// Place validates the customer fields and, on success, mints an order number,
// snapshots the cart, and moves to confirmed. On validation failure the state
// stays reviewing and no order is created.
func (l *Lifecycle) Place(c Customer, mode FulfillmentMode) (Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateReviewing {
		return Order{}, ErrNotReviewing
	}
	l.state = StateSubmitting

	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)

	if c.Name == "" {
		l.state = StateReviewing
		return Order{}, ErrMissingName
	}
	if c.Phone == "" {
		l.state = StateReviewing
		return Order{}, ErrMissingPhone
	}

	if mode != ModeDelivery {
		mode = ModePickup
	}

	number := l.nextNumber
	l.nextNumber++

	snap := l.store.Snapshot()
	ord := Order{
		Number:      number,
		Customer:    c,
		Fulfillment: mode,
		Lines:       snap.Lines,
		Totals:      snap.Totals,
		PlacedAt:    time.Now().UTC(),
	}
	l.current = &ord
	l.mode = mode
	l.state = StateConfirmed
	return ord, nil
}

// Reset starts a new order: the cart is cleared, the confirmed order is
// discarded irrevocably, and the fulfillment selection goes back to pickup.
// Safe to call from any state.
func (l *Lifecycle) Reset() {
	l.mu.Lock()
	l.current = nil
	l.mode = ModePickup
	l.state = StateBrowsing
	l.mu.Unlock()

	l.store.Clear()
}

// Mode reports the current fulfillment selection.
func (l *Lifecycle) Mode() FulfillmentMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}
