package repository

import (
	"context"
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/storage"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type testStores struct {
	items     *storage.MemoryItemStore
	orders    *storage.MemoryOrderStore
	favorites *storage.MemoryFavoriteStore
}

func newTestRepo() (*Repository, testStores) {
	stores := testStores{
		items:     storage.NewMemoryItemStore(),
		orders:    storage.NewMemoryOrderStore(),
		favorites: storage.NewMemoryFavoriteStore(),
	}
	repo := NewWithClock(stores.items, stores.orders, stores.favorites, func() time.Time { return testNow })
	return repo, stores
}

func seedItem(stores testStores, item models.Item) {
	if err := stores.items.Insert(context.Background(), item); err != nil {
		panic(err)
	}
}
