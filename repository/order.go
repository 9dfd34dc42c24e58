package repository

import (
	"context"
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// Kitchen ETA rule: a fixed base plus a per-unit increment.
const (
	BasePrepMinutes = 5
	PerItemMinutes  = 2
)

// PlaceOrder validates the requested lines against the catalog, snapshots
// discounted prices, decrements stock and persists the order.
//
// Every line is validated before any stock is touched, so a failing line
// never leaves earlier lines partially applied. This is a best-effort
// ordering guarantee, not a cross-record transaction: two orders racing on
// the same item can both pass validation before either decrements. Closing
// that race would take a conditional decrement-if-sufficient per line.
func (r *Repository) PlaceOrder(ctx context.Context, customerID string, lines []models.LineRequest, notes string) (*models.Order, error) {
	if customerID == "" {
		customerID = models.GuestCustomerID
	}
	if len(lines) == 0 {
		return nil, validationErrorf("order must contain at least one item")
	}

	ids := make([]int, 0, len(lines))
	for _, req := range lines {
		ids = append(ids, req.ItemID)
	}
	byID, err := r.items.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Validation pass: nothing below may mutate until every line clears.
	// Stock is checked against the COMBINED demand per item, so duplicate
	// lines for one item cannot each pass individually and oversell it.
	totalUnits := 0
	demand := make(map[int]int)
	for _, req := range lines {
		if _, ok := byID[req.ItemID]; !ok {
			return nil, validationErrorf("item %d not found", req.ItemID)
		}
		if req.Quantity < 1 {
			return nil, validationErrorf("quantity must be >= 1")
		}
		demand[req.ItemID] += req.Quantity
		totalUnits += req.Quantity
	}
	for _, req := range lines {
		if byID[req.ItemID].Quantity < demand[req.ItemID] {
			return nil, validationErrorf("not enough stock for item %d", req.ItemID)
		}
	}

	orderLines := make([]models.OrderLine, 0, len(lines))
	totals := make([]float64, 0, len(lines))
	for _, req := range lines {
		item := byID[req.ItemID]
		unit := unitPriceAfterDiscount(item.Price, item.DiscountPercentage)
		total := lineTotal(unit, req.Quantity)
		orderLines = append(orderLines, models.OrderLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  req.Quantity,
			UnitPrice: unit,
			LineTotal: total,
		})
		totals = append(totals, total)
	}

	// Commit pass: one decrement per item covering its combined demand,
	// availability recomputed per item.
	adjusted := make(map[int]bool, len(demand))
	for _, req := range lines {
		if adjusted[req.ItemID] {
			continue
		}
		adjusted[req.ItemID] = true
		if err := r.items.AdjustStock(ctx, req.ItemID, -demand[req.ItemID]); err != nil {
			return nil, err
		}
	}

	now := r.now()
	etaMinutes := BasePrepMinutes + PerItemMinutes*totalUnits

	id, err := r.orders.NextID(ctx)
	if err != nil {
		return nil, err
	}
	order := models.Order{
		ID:               id,
		CustomerID:       customerID,
		Status:           models.StatusPending,
		Items:            orderLines,
		TotalPrice:       sumTotals(totals),
		CreatedAt:        now,
		EstimatedReadyAt: now.Add(time.Duration(etaMinutes) * time.Minute),
		StatusHistory:    []models.StatusEntry{{Status: models.StatusPending, At: now}},
		Notes:            notes,
	}
	if err := r.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves the order to newStatus, appending to its history
// and stamping completed_at on the transition into completed. An unknown
// status is treated as a failed lookup, same as a missing order id.
func (r *Repository) UpdateOrderStatus(ctx context.Context, id int, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.IsValid() {
		return nil, nil
	}

	now := r.now()
	entry := models.StatusEntry{Status: newStatus, At: now}
	var completedAt *time.Time
	if newStatus == models.StatusCompleted {
		completedAt = &now
	}
	return r.orders.AppendStatus(ctx, id, entry, completedAt)
}

// GetOrder returns the order with the given id, or nil if none exists.
func (r *Repository) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return r.orders.Get(ctx, id)
}

// ListOrders returns all orders (nil customerID, admin view) or one
// customer's orders, most recent first.
func (r *Repository) ListOrders(ctx context.Context, customerID *string) ([]models.Order, error) {
	return r.orders.List(ctx, customerID)
}
