package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// GetItem returns the item with the given id, or nil if it does not exist.
func (r *Repository) GetItem(ctx context.Context, id int) (*models.Item, error) {
	return r.items.Get(ctx, id)
}

// ListItems returns catalog items narrowed by the filter.
func (r *Repository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return r.items.List(ctx, filter)
}

// CreateItem inserts a new catalog item under the next free id. Availability
// is forced false when the initial stock is zero, whatever the caller asked
// for.
func (r *Repository) CreateItem(ctx context.Context, input models.ItemInput) (*models.Item, error) {
	if input.Price < 0 {
		return nil, validationErrorf("price must be non-negative")
	}
	if input.Quantity < 0 {
		return nil, validationErrorf("quantity must be non-negative")
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, validationErrorf("discount_percentage must be between 0 and 100")
	}

	id, err := r.items.NextID(ctx)
	if err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}
	allergens := input.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	item := models.Item{
		ID:                 id,
		Name:               input.Name,
		Category:           input.Category,
		Price:              input.Price,
		Quantity:           input.Quantity,
		Available:          available && input.Quantity > 0,
		ImageURL:           input.ImageURL,
		Description:        input.Description,
		IsVegetarian:       input.IsVegetarian,
		IsVegan:            input.IsVegan,
		IsGlutenFree:       input.IsGlutenFree,
		Allergens:          allergens,
		IsDailySpecial:     input.IsDailySpecial,
		DiscountPercentage: input.DiscountPercentage,
		Calories:           input.Calories,
		PreparationTime:    input.PreparationTime,
	}
	if err := r.items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies only the supplied fields. When quantity changes without
// an explicit availability flag, availability follows the new stock level; an
// explicit flag in the same call wins. Returns nil if the id does not exist.
func (r *Repository) UpdateItem(ctx context.Context, id int, patch models.ItemPatch) (*models.Item, error) {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, validationErrorf("quantity must be >= 0")
	}
	if patch.DiscountPercentage != nil && (*patch.DiscountPercentage < 0 || *patch.DiscountPercentage > 100) {
		return nil, validationErrorf("discount_percentage must be between 0 and 100")
	}
	if patch.Quantity != nil && patch.Available == nil {
		available := *patch.Quantity > 0
		patch.Available = &available
	}
	if patch.IsEmpty() {
		return r.items.Get(ctx, id)
	}
	return r.items.Update(ctx, id, patch)
}

// DeleteItem removes the item and reports whether a record existed.
func (r *Repository) DeleteItem(ctx context.Context, id int) (bool, error) {
	return r.items.Delete(ctx, id)
}

// RateItem folds one 1..5 rating into the item's running mean. Returns nil
// if the item does not exist.
func (r *Repository) RateItem(ctx context.Context, id int, rating int) (*models.Item, error) {
	if rating < 1 || rating > 5 {
		return nil, validationErrorf("rating must be between 1 and 5")
	}

	item, err := r.items.Get(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}

	newCount := item.RatingCount + 1
	newAvg := (item.RatingAvg*float64(item.RatingCount) + float64(rating)) / float64(newCount)
	return r.items.SetRating(ctx, id, newAvg, newCount)
}

// DailySpecials returns the available items flagged for promotional display.
func (r *Repository) DailySpecials(ctx context.Context) ([]models.Item, error) {
	special := true
	available := true
	return r.items.List(ctx, models.ItemFilter{DailySpecial: &special, Available: &available})
}

// Categories returns the sorted distinct category names across the catalog.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	items, err := r.items.List(ctx, models.ItemFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			categories = append(categories, it.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// SearchItems matches the query case-insensitively against item names and
// descriptions, optionally narrowed to a category.
func (r *Repository) SearchItems(ctx context.Context, query string, category *string) ([]models.Item, error) {
	items, err := r.items.List(ctx, models.ItemFilter{Category: category})
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	results := []models.Item{}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			results = append(results, it)
		}
	}
	return results, nil
}
