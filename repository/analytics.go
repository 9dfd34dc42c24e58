package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// TopSellingEntry is one row of the top-selling report.
type TopSellingEntry struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// TopSelling sums ordered units per item across the whole ledger (legacy
// flat orders included, since normalization already turned them into lines)
// and returns the top limit items by units sold. Names come from the current
// catalog; deleted items keep a synthesized label.
func (r *Repository) TopSelling(ctx context.Context, limit int) ([]TopSellingEntry, error) {
	orders, err := r.orders.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	units := make(map[int]int)
	for _, o := range orders {
		for _, line := range o.Items {
			units[line.ItemID] += line.Quantity
		}
	}

	entries := make([]TopSellingEntry, 0, len(units))
	for id, sold := range units {
		entries = append(entries, TopSellingEntry{ItemID: id, UnitsSold: sold})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UnitsSold != entries[j].UnitsSold {
			return entries[i].UnitsSold > entries[j].UnitsSold
		}
		return entries[i].ItemID < entries[j].ItemID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for i := range entries {
		item, err := r.items.Get(ctx, entries[i].ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			entries[i].Name = item.Name
		} else {
			entries[i].Name = fmt.Sprintf("Item %d", entries[i].ItemID)
		}
	}
	return entries, nil
}

// TopRated returns the limit highest-rated items among those with at least
// one rating, breaking average ties by rating count.
func (r *Repository) TopRated(ctx context.Context, limit int) ([]models.Item, error) {
	items, err := r.items.List(ctx, models.ItemFilter{})
	if err != nil {
		return nil, err
	}

	rated := []models.Item{}
	for _, it := range items {
		if it.RatingCount > 0 {
			rated = append(rated, it)
		}
	}
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].RatingAvg != rated[j].RatingAvg {
			return rated[i].RatingAvg > rated[j].RatingAvg
		}
		return rated[i].RatingCount > rated[j].RatingCount
	})
	if limit > 0 && len(rated) > limit {
		rated = rated[:limit]
	}
	return rated, nil
}
