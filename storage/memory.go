package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// MemoryItemStore is a map-backed ItemStore used in tests and local runs.
type MemoryItemStore struct {
	mu    sync.Mutex
	items map[int]models.Item
}

func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{items: make(map[int]models.Item)}
}

func (s *MemoryItemStore) Get(_ context.Context, id int) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *MemoryItemStore) GetMany(_ context.Context, ids []int) (map[int]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]models.Item, len(ids))
	for _, id := range ids {
		if it, ok := s.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func (s *MemoryItemStore) List(_ context.Context, filter models.ItemFilter) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Item, 0, len(s.items))
	for _, it := range s.items {
		if filter.Matches(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryItemStore) Insert(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

func (s *MemoryItemStore) Update(_ context.Context, id int, patch models.ItemPatch) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
	if patch.ImageURL != nil {
		it.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.IsVegetarian != nil {
		it.IsVegetarian = *patch.IsVegetarian
	}
	if patch.IsVegan != nil {
		it.IsVegan = *patch.IsVegan
	}
	if patch.IsGlutenFree != nil {
		it.IsGlutenFree = *patch.IsGlutenFree
	}
	if patch.Allergens != nil {
		it.Allergens = *patch.Allergens
	}
	if patch.IsDailySpecial != nil {
		it.IsDailySpecial = *patch.IsDailySpecial
	}
	if patch.DiscountPercentage != nil {
		it.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.Calories != nil {
		it.Calories = *patch.Calories
	}
	if patch.PreparationTime != nil {
		it.PreparationTime = *patch.PreparationTime
	}
	s.items[id] = it
	return &it, nil
}

func (s *MemoryItemStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *MemoryItemStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 1
	for id := range s.items {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}

func (s *MemoryItemStore) AdjustStock(_ context.Context, id int, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil
	}
	it.Quantity += delta
	it.Available = it.Quantity > 0
	s.items[id] = it
	return nil
}

func (s *MemoryItemStore) SetRating(_ context.Context, id int, avg float64, count int) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	it.RatingAvg = avg
	it.RatingCount = count
	s.items[id] = it
	return &it, nil
}

// MemoryOrderStore is a map-backed OrderStore used in tests and local runs.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[int]models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[int]models.Order)}
}

func (s *MemoryOrderStore) Get(_ context.Context, id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *MemoryOrderStore) List(_ context.Context, customerID *string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if customerID != nil && !customerMatches(o.CustomerID, *customerID) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func customerMatches(recorded, requested string) bool {
	if recorded == requested {
		return true
	}
	// Legacy orders predate customer tracking; they belong to the guest.
	return requested == models.GuestCustomerID && recorded == ""
}

func (s *MemoryOrderStore) Insert(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	return nil
}

func (s *MemoryOrderStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 1
	for id := range s.orders {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}

func (s *MemoryOrderStore) AppendStatus(_ context.Context, id int, entry models.StatusEntry, completedAt *time.Time) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = entry.Status
	o.StatusHistory = append(o.StatusHistory, entry)
	if completedAt != nil {
		t := *completedAt
		o.CompletedAt = &t
	}
	s.orders[id] = o
	return &o, nil
}

// MemoryFavoriteStore is a map-backed FavoriteStore used in tests.
type MemoryFavoriteStore struct {
	mu   sync.Mutex
	favs map[string]map[int]models.Favorite
}

func NewMemoryFavoriteStore() *MemoryFavoriteStore {
	return &MemoryFavoriteStore{favs: make(map[string]map[int]models.Favorite)}
}

func (s *MemoryFavoriteStore) Add(_ context.Context, fav models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byItem, ok := s.favs[fav.CustomerID]
	if !ok {
		byItem = make(map[int]models.Favorite)
		s.favs[fav.CustomerID] = byItem
	}
	if _, exists := byItem[fav.ItemID]; !exists {
		byItem[fav.ItemID] = fav
	}
	return nil
}

func (s *MemoryFavoriteStore) Remove(_ context.Context, customerID string, itemID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byItem, ok := s.favs[customerID]
	if !ok {
		return false, nil
	}
	if _, exists := byItem[itemID]; !exists {
		return false, nil
	}
	delete(byItem, itemID)
	return true, nil
}

func (s *MemoryFavoriteStore) List(_ context.Context, customerID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.favs[customerID]))
	for id := range s.favs[customerID] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
