package catalog

// Item is one menu entry as shown on the page. The ordering core never
// mutates items; the cart copies the fields it needs at insertion time.
type Item struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	UnitPrice   float64 `json:"unitPrice" yaml:"unitPrice"`
}

// Menu is the full item list in display order.
type Menu struct {
	Restaurant string `json:"restaurant" yaml:"restaurant"`
	Items      []Item `json:"items" yaml:"items"`
}
