package storage

import (
	"fmt"
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// orderDoc mirrors a raw ledger document. Two shapes exist in the wild: the
// canonical cart shape with an items[] array, and the legacy flat shape
// {item_id, quantity, total_price} from before cart orders existed. The
// legacy shape is resolved here, once, at the storage boundary; business
// logic only ever sees the canonical models.Order.
type orderDoc struct {
	ID               int                  `bson:"id"`
	CustomerID       *string              `bson:"customer_id"`
	Status           models.OrderStatus   `bson:"status"`
	Items            []models.OrderLine   `bson:"items"`
	TotalPrice       float64              `bson:"total_price"`
	CreatedAt        time.Time            `bson:"created_at"`
	EstimatedReadyAt time.Time            `bson:"estimated_ready_at"`
	CompletedAt      *time.Time           `bson:"completed_at"`
	StatusHistory    []models.StatusEntry `bson:"status_history"`
	Notes            string               `bson:"notes"`

	// Legacy flat shape only.
	ItemID   *int `bson:"item_id"`
	Quantity int  `bson:"quantity"`
}

// normalizeOrder converts a raw ledger document into the canonical Order.
// lookupItem resolves an item id against the current catalog and may return
// nil for items deleted since the order was placed.
func normalizeOrder(doc orderDoc, lookupItem func(id int) *models.Item) models.Order {
	o := models.Order{
		ID:               doc.ID,
		CustomerID:       models.GuestCustomerID,
		Status:           doc.Status,
		Items:            doc.Items,
		TotalPrice:       doc.TotalPrice,
		CreatedAt:        doc.CreatedAt,
		EstimatedReadyAt: doc.EstimatedReadyAt,
		CompletedAt:      doc.CompletedAt,
		StatusHistory:    doc.StatusHistory,
		Notes:            doc.Notes,
	}
	if doc.CustomerID != nil && *doc.CustomerID != "" {
		o.CustomerID = *doc.CustomerID
	}
	if doc.Items != nil || doc.ItemID == nil {
		return o
	}

	// Legacy single-item order: synthesize the one line it represents.
	id := *doc.ItemID
	qty := doc.Quantity
	name := fmt.Sprintf("Item %d", id)
	unitPrice := 0.0
	if qty > 0 {
		unitPrice = doc.TotalPrice / float64(qty)
	}
	if it := lookupItem(id); it != nil {
		name = it.Name
		if qty > 0 {
			unitPrice = it.Price
		}
	}
	o.Items = []models.OrderLine{{
		ItemID:    id,
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * float64(qty),
	}}
	return o
}
