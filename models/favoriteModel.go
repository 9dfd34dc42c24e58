package models

import "time"

// Favorite associates a customer with a catalog item. The (customer, item)
// pair is unique.
type Favorite struct {
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	ItemID     int       `bson:"item_id" json:"item_id"`
	AddedAt    time.Time `bson:"added_at" json:"added_at"`
}
