// Package repository holds the business core of the cafeteria backend:
// catalog management, the order placement workflow, analytics and favorites.
// It speaks only to the storage contracts, so tests run it against the
// in-memory stores while production wires the Mongo-backed ones.
package repository

import (
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/storage"
)

type Repository struct {
	items     storage.ItemStore
	orders    storage.OrderStore
	favorites storage.FavoriteStore

	// now is read exactly once per logical operation so that, e.g., an
	// order's created_at and its first history entry never drift apart.
	now func() time.Time
}

func New(items storage.ItemStore, orders storage.OrderStore, favorites storage.FavoriteStore) *Repository {
	return NewWithClock(items, orders, favorites, time.Now)
}

// NewWithClock injects the clock; tests pin it to a fixed instant.
func NewWithClock(items storage.ItemStore, orders storage.OrderStore, favorites storage.FavoriteStore, now func() time.Time) *Repository {
	return &Repository{
		items:     items,
		orders:    orders,
		favorites: favorites,
		now:       now,
	}
}
