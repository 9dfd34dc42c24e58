package storage

import (
	"context"
	"time"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// ItemStore is the catalog persistence contract. Absent records are reported
// as nil results, never as errors.
type ItemStore interface {
	// Get returns the item with the given id, or nil if none exists.
	Get(ctx context.Context, id int) (*models.Item, error)
	// GetMany resolves a batch of ids in one call; missing ids are simply
	// absent from the returned map.
	GetMany(ctx context.Context, ids []int) (map[int]models.Item, error)
	// List returns all items passing the filter, in unspecified order.
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	Insert(ctx context.Context, item models.Item) error
	// Update applies only the set fields of the patch and returns the updated
	// item, or nil if the id does not exist. Availability semantics are the
	// caller's concern: the patch arrives with Available already resolved.
	Update(ctx context.Context, id int, patch models.ItemPatch) (*models.Item, error)
	// Delete removes the item and reports whether a record existed.
	Delete(ctx context.Context, id int) (bool, error)
	// NextID returns max(id)+1, or 1 for an empty catalog.
	NextID(ctx context.Context) (int, error)
	// AdjustStock changes the item's quantity by delta and recomputes
	// available as quantity > 0 in the same single-document update.
	AdjustStock(ctx context.Context, id int, delta int) error
	// SetRating overwrites the rating aggregate and returns the updated item,
	// or nil if the id does not exist.
	SetRating(ctx context.Context, id int, avg float64, count int) (*models.Item, error)
}

// OrderStore is the order-ledger persistence contract. Orders are append-
// mostly: after insertion only status transitions touch them.
type OrderStore interface {
	Get(ctx context.Context, id int) (*models.Order, error)
	// List returns orders sorted most-recent-first by id. A nil customerID
	// returns everything; the guest sentinel also matches legacy records
	// that carry no customer at all.
	List(ctx context.Context, customerID *string) ([]models.Order, error)
	Insert(ctx context.Context, order models.Order) error
	NextID(ctx context.Context) (int, error)
	// AppendStatus sets the order's status, appends the entry to the status
	// history and, when completedAt is non-nil, records the completion time,
	// all in one atomic update. Returns the updated order, or nil if the id
	// does not exist.
	AppendStatus(ctx context.Context, id int, entry models.StatusEntry, completedAt *time.Time) (*models.Order, error)
}

// FavoriteStore persists (customer, item) favorite pairs.
type FavoriteStore interface {
	// Add records the pair; adding an existing pair is a no-op.
	Add(ctx context.Context, fav models.Favorite) error
	// Remove deletes the pair and reports whether it existed.
	Remove(ctx context.Context, customerID string, itemID int) (bool, error)
	// List returns the favorited item ids for the customer.
	List(ctx context.Context, customerID string) ([]int, error)
}
