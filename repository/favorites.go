package repository

import (
	"context"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// AddFavorite records the (customer, item) pair. It reports false when the
// item does not exist; adding an already-favorited pair succeeds without
// duplication.
func (r *Repository) AddFavorite(ctx context.Context, customerID string, itemID int) (bool, error) {
	item, err := r.items.Get(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}
	fav := models.Favorite{
		CustomerID: customerID,
		ItemID:     itemID,
		AddedAt:    r.now(),
	}
	if err := r.favorites.Add(ctx, fav); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFavorite deletes the pair and reports whether it existed.
func (r *Repository) RemoveFavorite(ctx context.Context, customerID string, itemID int) (bool, error) {
	return r.favorites.Remove(ctx, customerID, itemID)
}

// ListFavorites returns the customer's favorited item ids.
func (r *Repository) ListFavorites(ctx context.Context, customerID string) ([]int, error) {
	return r.favorites.List(ctx, customerID)
}

// FavoriteItems resolves the customer's favorites against the catalog,
// skipping items deleted since they were favorited.
func (r *Repository) FavoriteItems(ctx context.Context, customerID string) ([]models.Item, error) {
	ids, err := r.favorites.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	byID, err := r.items.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := []models.Item{}
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			items = append(items, it)
		}
	}
	return items, nil
}
