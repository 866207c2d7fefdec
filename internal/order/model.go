package order

import (
	"time"

	"github.com/oaktable/menu-service/internal/cart"
)

// FulfillmentMode is how the customer receives the order.
type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

// ParseMode coerces raw input to a known mode, defaulting to pickup.
func ParseMode(v string) FulfillmentMode {
	if FulfillmentMode(v) == ModeDelivery {
		return ModeDelivery
	}
	return ModePickup
}

// Customer carries the fields entered at submission. Name and phone are
// required (after trimming); email is optional and unvalidated.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Order is the snapshot minted when an order is placed. Immutable once
// created; discarded when the lifecycle resets.
type Order struct {
	Number      int             `json:"orderNumber"`
	Customer    Customer        `json:"customer"`
	Fulfillment FulfillmentMode `json:"fulfillment"`
	Lines       []cart.Line     `json:"lines"`
	Totals      cart.Totals     `json:"totals"`
	PlacedAt    time.Time       `json:"placedAt"`
}
