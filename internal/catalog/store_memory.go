package catalog

import "context"

// MemStore holds products in listing order. It takes ownership of the slice
// at construction and never writes to it afterwards, so no locking is needed.
type MemStore struct {
	products []Product
}

func NewMemStore(products []Product) *MemStore {
	return &MemStore{products: products}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "p001",
			Name:        "Aurora Headphones",
			Description: "Wireless over-ear headphones with immersive sound and 30h battery life.",
			PriceCents:  12999,
			Currency:    "usd",
			Image:       "/images/aurora.jpg",
		},
		{
			ID:          "p002",
			Name:        "Lumen Smart Lamp",
			Description: "Compact smart lamp with dynamic color scenes and touch dimming.",
			PriceCents:  5999,
			Currency:    "usd",
			Image:       "/images/lumen.jpg",
		},
		{
			ID:          "p003",
			Name:        "Nimbus Keyboard",
			Description: "Low-profile mechanical keyboard with hot-swappable switches.",
			PriceCents:  8999,
			Currency:    "usd",
			Image:       "/images/nimbus.jpg",
		},
		{
			ID:          "p004",
			Name:        "Zephyr Mouse",
			Description: "Ergonomic wireless mouse with adjustable DPI and silent clicks.",
			PriceCents:  3999,
			Currency:    "usd",
			Image:       "/images/zephyr.jpg",
		},
	}
}

func (s *MemStore) List(_ context.Context) ([]Product, error) {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Get is a linear scan. The catalog is four items; an index would be noise.
func (s *MemStore) Get(_ context.Context, id string) (Product, bool, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}
