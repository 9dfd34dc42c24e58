package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

func TestPlaceOrderDiscountedScenario(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Biryani", Category: "main", Price: 4.50, Quantity: 20, Available: true, DiscountPercentage: 10})
	ctx := context.Background()

	order, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 1, Quantity: 2}}, "")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	line := order.Items[0]
	assert.InDelta(t, 4.05, line.UnitPrice, 1e-9)
	assert.InDelta(t, 8.10, line.LineTotal, 1e-9)
	assert.InDelta(t, 8.10, order.TotalPrice, 1e-9)

	item, err := repo.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 18, item.Quantity)
	assert.True(t, item.Available)
}

func TestPlaceOrderETA(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})

	order, err := repo.PlaceOrder(context.Background(), "guest", []models.LineRequest{{ItemID: 1, Quantity: 3}}, "")
	require.NoError(t, err)

	// 5 base + 2 per unit x 3 units = 11 minutes.
	assert.Equal(t, testNow.Add(11*time.Minute), order.EstimatedReadyAt)
	assert.Equal(t, testNow, order.CreatedAt)
}

func TestPlaceOrderSeedsStatusHistory(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})

	order, err := repo.PlaceOrder(context.Background(), "alice", []models.LineRequest{{ItemID: 1, Quantity: 1}}, "extra hot")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.StatusPending, order.StatusHistory[0].Status)
	assert.Equal(t, order.CreatedAt, order.StatusHistory[0].At)
	assert.Equal(t, "extra hot", order.Notes)
	assert.Nil(t, order.CompletedAt)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	repo, _ := newTestRepo()

	_, err := repo.PlaceOrder(context.Background(), "guest", nil, "")
	assert.True(t, IsValidation(err))
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})

	_, err := repo.PlaceOrder(context.Background(), "guest", []models.LineRequest{
		{ItemID: 1, Quantity: 1},
		{ItemID: 99, Quantity: 1},
	}, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "99")
}

func TestPlaceOrderZeroQuantityLine(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})

	_, err := repo.PlaceOrder(context.Background(), "guest", []models.LineRequest{{ItemID: 1, Quantity: 0}}, "")
	assert.True(t, IsValidation(err))
}

func TestPlaceOrderValidationPrecedesMutation(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Biryani", Category: "main", Price: 4.50, Quantity: 20, Available: true})
	seedItem(stores, models.Item{ID: 2, Name: "Sandwich", Category: "snack", Price: 2.00, Quantity: 1, Available: true})
	ctx := context.Background()

	_, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{
		{ItemID: 1, Quantity: 5},
		{ItemID: 2, Quantity: 3}, // exceeds stock
	}, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "2")

	// No stock may have been decremented for ANY line.
	first, err := repo.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, first.Quantity)

	second, err := repo.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Quantity)
}

func TestPlaceOrderDepletesStockThenRejects(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 3, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 1, Available: true})
	ctx := context.Background()

	_, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 3, Quantity: 1}}, "")
	require.NoError(t, err)

	item, err := repo.GetItem(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.False(t, item.Available)

	_, err = repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 3, Quantity: 1}}, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPlaceOrderDuplicateLinesShareStock(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 1, Available: true})
	ctx := context.Background()

	// Two lines for the same item would pass a per-line check individually;
	// their combined demand must be rejected against stock 1.
	_, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{
		{ItemID: 1, Quantity: 1},
		{ItemID: 1, Quantity: 1},
	}, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "1")

	item, err := repo.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity, "stock must never go negative")
	assert.True(t, item.Available)
}

func TestPlaceOrderDuplicateLinesWithinStock(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 5, Available: true})
	ctx := context.Background()

	order, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{
		{ItemID: 1, Quantity: 2},
		{ItemID: 1, Quantity: 2},
	}, "")
	require.NoError(t, err)
	require.Len(t, order.Items, 2, "duplicate lines stay separate lines")
	assert.InDelta(t, 6.00, order.TotalPrice, 1e-9)

	item, err := repo.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity, "combined demand decremented exactly once")
	assert.True(t, item.Available)
}

func TestOrderTotalsSnapshotAtCreation(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Biryani", Category: "main", Price: 4.50, Quantity: 20, Available: true})
	ctx := context.Background()

	order, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 1, Quantity: 2}}, "")
	require.NoError(t, err)
	assert.InDelta(t, 9.00, order.TotalPrice, 1e-9)

	// A later price hike must not touch the persisted order.
	price := 99.0
	_, err = repo.UpdateItem(ctx, 1, models.ItemPatch{Price: &price})
	require.NoError(t, err)

	persisted, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.InDelta(t, 9.00, persisted.TotalPrice, 1e-9)
	assert.InDelta(t, 4.50, persisted.Items[0].UnitPrice, 1e-9)
}

func TestOrderTotalEqualsSumOfLineTotals(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Biryani", Category: "main", Price: 4.50, Quantity: 20, Available: true, DiscountPercentage: 10})
	seedItem(stores, models.Item{ID: 2, Name: "Sandwich", Category: "snack", Price: 2.00, Quantity: 15, Available: true})
	seedItem(stores, models.Item{ID: 3, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 20, Available: true, DiscountPercentage: 33})

	order, err := repo.PlaceOrder(context.Background(), "guest", []models.LineRequest{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 1},
		{ItemID: 3, Quantity: 4},
	}, "")
	require.NoError(t, err)

	sum := 0.0
	for _, line := range order.Items {
		assert.InDelta(t, line.UnitPrice*float64(line.Quantity), line.LineTotal, 1e-6)
		sum += line.LineTotal
	}
	assert.InDelta(t, sum, order.TotalPrice, 1e-9)
}

func TestUpdateOrderStatusCompletedSetsTimestamp(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})
	ctx := context.Background()

	order, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 1, Quantity: 1}}, "")
	require.NoError(t, err)

	updated, err := repo.UpdateOrderStatus(ctx, order.ID, models.StatusPreparing)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusPreparing, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	updated, err = repo.UpdateOrderStatus(ctx, order.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, testNow, *updated.CompletedAt)

	require.Len(t, updated.StatusHistory, 3)
	assert.Equal(t, models.StatusPending, updated.StatusHistory[0].Status)
	assert.Equal(t, models.StatusPreparing, updated.StatusHistory[1].Status)
	assert.Equal(t, models.StatusCompleted, updated.StatusHistory[2].Status)
}

func TestUpdateOrderStatusBogusLeavesOrderUntouched(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})
	ctx := context.Background()

	order, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 1, Quantity: 1}}, "")
	require.NoError(t, err)

	updated, err := repo.UpdateOrderStatus(ctx, order.ID, "bogus")
	require.NoError(t, err)
	assert.Nil(t, updated)

	persisted, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, persisted.Status)
	assert.Len(t, persisted.StatusHistory, 1)
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	repo, _ := newTestRepo()

	updated, err := repo.UpdateOrderStatus(context.Background(), 404, models.StatusReady)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.PlaceOrder(ctx, "guest", []models.LineRequest{{ItemID: 1, Quantity: 1}}, "")
		require.NoError(t, err)
	}

	orders, err := repo.ListOrders(ctx, nil)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, 3, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, 1, orders[2].ID)
}

func TestListOrdersGuestMatchesLegacyRecords(t *testing.T) {
	repo, stores := newTestRepo()
	ctx := context.Background()

	// Legacy order with no customer recorded at all.
	require.NoError(t, stores.orders.Insert(ctx, models.Order{ID: 1, Status: models.StatusPending}))
	require.NoError(t, stores.orders.Insert(ctx, models.Order{ID: 2, CustomerID: "guest", Status: models.StatusPending}))
	require.NoError(t, stores.orders.Insert(ctx, models.Order{ID: 3, CustomerID: "alice", Status: models.StatusPending}))

	guest := models.GuestCustomerID
	orders, err := repo.ListOrders(ctx, &guest)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 2, orders[0].ID)
	assert.Equal(t, 1, orders[1].ID)

	alice := "alice"
	orders, err = repo.ListOrders(ctx, &alice)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 3, orders[0].ID)
}

func TestPlaceOrderDefaultsToGuest(t *testing.T) {
	repo, stores := newTestRepo()
	seedItem(stores, models.Item{ID: 1, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 10, Available: true})

	order, err := repo.PlaceOrder(context.Background(), "", []models.LineRequest{{ItemID: 1, Quantity: 1}}, "")
	require.NoError(t, err)
	assert.Equal(t, models.GuestCustomerID, order.CustomerID)
}
