package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the loaded menu and an index by item id. It is built once at
// startup and read-only afterwards.
type Catalog struct {
	menu  Menu
	byID  map[string]Item
	order []string
}

// Load parses a menu document and validates every item.
func Load(data []byte) (*Catalog, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	if len(m.Items) == 0 {
		return nil, fmt.Errorf("menu has no items")
	}

	c := &Catalog{
		menu: m,
		byID: make(map[string]Item, len(m.Items)),
	}
	for i, it := range m.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("menu item %d: missing id", i)
		}
		if it.Name == "" {
			return nil, fmt.Errorf("menu item %q: missing name", it.ID)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("menu item %q: negative price %v", it.ID, it.UnitPrice)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("menu item %q: duplicate id", it.ID)
		}
		c.byID[it.ID] = it
		c.order = append(c.order, it.ID)
	}
	return c, nil
}

// LoadFile reads a menu document from disk; used when MENU_PATH overrides the
// embedded default.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return Load(data)
}

// LoadDefault parses the menu compiled into the binary.
func LoadDefault() (*Catalog, error) {
	return Load(defaultMenu)
}

// Restaurant returns the display name from the menu document.
func (c *Catalog) Restaurant() string { return c.menu.Restaurant }

// Items returns all items in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get looks an item up by id.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Categories returns the distinct categories in first-appearance order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range c.order {
		cat := c.byID[id].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}
