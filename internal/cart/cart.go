// Package cart holds the per-session shopping cart and its mutation rules.
package cart

import "github.com/gargchanchal/TEST-ECO/internal/catalog"

type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart keeps items in insertion order, at most one per product id.
// TotalCents is derived; every mutation recomputes it before returning.
type Cart struct {
	Items      []Item `json:"items"`
	TotalCents int64  `json:"total_cents"`
}

func New() Cart {
	return Cart{Items: []Item{}}
}

// Add merges qty into an existing line for the product or appends a new one.
// Quantities below 1 count as 1.
func (c *Cart) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity += qty
			c.Recalc()
			return
		}
	}

	c.Items = append(c.Items, Item{Product: p, Quantity: qty})
	c.Recalc()
}

// Apply performs one cart update. A non-empty removeID deletes that line and
// the quantity map is ignored entirely. Otherwise every line whose product id
// appears in quantities gets the supplied value, coerced via ParseQuantity
// with the line's current quantity as fallback; lines absent from the map are
// untouched.
func (c *Cart) Apply(removeID string, quantities map[string]string) {
	if removeID != "" {
		c.remove(removeID)
		c.Recalc()
		return
	}

	for i := range c.Items {
		raw, ok := quantities[c.Items[i].Product.ID]
		if !ok {
			continue
		}
		c.Items[i].Quantity = ParseQuantity(raw, c.Items[i].Quantity)
	}
	c.Recalc()
}

// remove deletes the line for id, keeping order. No-op if absent.
func (c *Cart) remove(id string) {
	n := 0
	for _, it := range c.Items {
		if it.Product.ID != id {
			c.Items[n] = it
			n++
		}
	}
	c.Items = c.Items[:n]
}

// Recalc restores the total invariant: TotalCents == Σ price × quantity.
func (c *Cart) Recalc() {
	var total int64
	for _, it := range c.Items {
		total += it.Product.PriceCents * int64(it.Quantity)
	}
	c.TotalCents = total
}
