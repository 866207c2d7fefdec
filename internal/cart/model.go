package cart

import "math"

// TaxRate is the sales tax applied to every order.
const TaxRate = 0.0825

// Line is one row in the cart. ID is stable for the lifetime of the line;
// Name together with Notes is the merge key for AddItem.
type Line struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes"`
}

// ItemDescriptor carries what the caller knows about a menu item when adding
// it. Notes defaults to empty.
type ItemDescriptor struct {
	Name      string
	UnitPrice float64
	Category  string
	Notes     string
}

// Totals is derived from the current lines on every call, never stored.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Snapshot is the immutable view handed to subscribers and to the HTTP layer
// after each mutation.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	Totals    Totals `json:"totals"`
	ItemCount int    `json:"itemCount"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals is the pure totals function over a set of lines.
func ComputeTotals(lines []Line) Totals {
	var subtotal float64
	for _, ln := range lines {
		subtotal += ln.UnitPrice * float64(ln.Quantity)
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}
