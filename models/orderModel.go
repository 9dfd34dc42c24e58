package models

import "time"

// OrderStatus is the fixed order lifecycle enumeration.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// GuestCustomerID is the sentinel customer for unauthenticated orders.
const GuestCustomerID = "guest"

// OrderLine is a price snapshot of one ordered item, captured at order
// creation. Later catalog edits never change it.
type OrderLine struct {
	ItemID    int     `bson:"item_id" json:"item_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
	LineTotal float64 `bson:"line_total" json:"line_total"`
}

// StatusEntry is one record of the append-only status history.
type StatusEntry struct {
	Status OrderStatus `bson:"status" json:"status"`
	At     time.Time   `bson:"at" json:"at"`
}

type Order struct {
	ID               int           `bson:"id" json:"id"`
	CustomerID       string        `bson:"customer_id" json:"customer_id"`
	Status           OrderStatus   `bson:"status" json:"status"`
	Items            []OrderLine   `bson:"items" json:"items"`
	TotalPrice       float64       `bson:"total_price" json:"total_price"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	EstimatedReadyAt time.Time     `bson:"estimated_ready_at" json:"estimated_ready_at"`
	CompletedAt      *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	StatusHistory    []StatusEntry `bson:"status_history" json:"status_history"`
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

// LineRequest is one requested (item, quantity) pairing of an incoming order.
type LineRequest struct {
	ItemID   int `json:"item_id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,min=1"`
}
