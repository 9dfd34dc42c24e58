package models

// Item is a catalog entry. Stock and availability are coupled: available is
// never true while quantity is 0, but may be forced false while stock remains.
type Item struct {
	ID                 int      `bson:"id" json:"id"`
	Name               string   `bson:"name" json:"name"`
	Category           string   `bson:"category" json:"category"`
	Price              float64  `bson:"price" json:"price"`
	Quantity           int      `bson:"quantity" json:"quantity"`
	Available          bool     `bson:"available" json:"available"`
	ImageURL           string   `bson:"image_url" json:"image_url"`
	RatingAvg          float64  `bson:"rating_avg" json:"rating_avg"`
	RatingCount        int      `bson:"rating_count" json:"rating_count"`
	Description        string   `bson:"description" json:"description"`
	IsVegetarian       bool     `bson:"is_vegetarian" json:"is_vegetarian"`
	IsVegan            bool     `bson:"is_vegan" json:"is_vegan"`
	IsGlutenFree       bool     `bson:"is_gluten_free" json:"is_gluten_free"`
	Allergens          []string `bson:"allergens" json:"allergens"`
	IsDailySpecial     bool     `bson:"is_daily_special" json:"is_daily_special"`
	DiscountPercentage float64  `bson:"discount_percentage" json:"discount_percentage"`
	Calories           int      `bson:"calories" json:"calories"`
	PreparationTime    int      `bson:"preparation_time" json:"preparation_time"`
}

// ItemInput carries the fields a caller supplies when creating an item.
type ItemInput struct {
	Name               string   `json:"name" validate:"required,min=2,max=100"`
	Category           string   `json:"category" validate:"required"`
	Price              float64  `json:"price" validate:"gte=0"`
	Quantity           int      `json:"quantity" validate:"gte=0"`
	Available          *bool    `json:"available"`
	ImageURL           string   `json:"image_url"`
	Description        string   `json:"description"`
	IsVegetarian       bool     `json:"is_vegetarian"`
	IsVegan            bool     `json:"is_vegan"`
	IsGlutenFree       bool     `json:"is_gluten_free"`
	Allergens          []string `json:"allergens"`
	IsDailySpecial     bool     `json:"is_daily_special"`
	DiscountPercentage float64  `json:"discount_percentage" validate:"gte=0,lte=100"`
	Calories           int      `json:"calories"`
	PreparationTime    int      `json:"preparation_time"`
}

// ItemPatch is a partial update: nil fields are left untouched. When Quantity
// is set and Available is not, availability is recomputed from the new stock.
type ItemPatch struct {
	Name               *string   `json:"name"`
	Category           *string   `json:"category"`
	Price              *float64  `json:"price"`
	Quantity           *int      `json:"quantity"`
	Available          *bool     `json:"available"`
	ImageURL           *string   `json:"image_url"`
	Description        *string   `json:"description"`
	IsVegetarian       *bool     `json:"is_vegetarian"`
	IsVegan            *bool     `json:"is_vegan"`
	IsGlutenFree       *bool     `json:"is_gluten_free"`
	Allergens          *[]string `json:"allergens"`
	IsDailySpecial     *bool     `json:"is_daily_special"`
	DiscountPercentage *float64  `json:"discount_percentage"`
	Calories           *int      `json:"calories"`
	PreparationTime    *int      `json:"preparation_time"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Available == nil && p.ImageURL == nil &&
		p.Description == nil && p.IsVegetarian == nil && p.IsVegan == nil &&
		p.IsGlutenFree == nil && p.Allergens == nil && p.IsDailySpecial == nil &&
		p.DiscountPercentage == nil && p.Calories == nil && p.PreparationTime == nil
}

// ItemFilter narrows a catalog listing by equality. Nil means "not filtered".
type ItemFilter struct {
	Available    *bool
	Category     *string
	Vegetarian   *bool
	Vegan        *bool
	GlutenFree   *bool
	DailySpecial *bool
}

// Matches reports whether the item passes every set filter field.
func (f ItemFilter) Matches(it Item) bool {
	if f.Available != nil && it.Available != *f.Available {
		return false
	}
	if f.Category != nil && it.Category != *f.Category {
		return false
	}
	if f.Vegetarian != nil && it.IsVegetarian != *f.Vegetarian {
		return false
	}
	if f.Vegan != nil && it.IsVegan != *f.Vegan {
		return false
	}
	if f.GlutenFree != nil && it.IsGlutenFree != *f.GlutenFree {
		return false
	}
	if f.DailySpecial != nil && it.IsDailySpecial != *f.DailySpecial {
		return false
	}
	return true
}
