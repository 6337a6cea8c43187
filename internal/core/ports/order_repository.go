package ports

import (
	"context"
	"time"

	"frameshop/internal/core/domain/model/kernel"
	"frameshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetInStatusChangedBefore retrieves orders sitting in the given status
	// whose last status change happened before the cutoff. Used by the
	// unclaimed-order sweep.
	GetInStatusChangedBefore(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)

	// AppendHistory persists one status history entry. Entries are never
	// updated or deleted.
	AppendHistory(ctx context.Context, entry order.StatusHistoryEntry) error

	// ListHistory retrieves an order's status history, oldest first.
	ListHistory(ctx context.Context, orderID kernel.UUID) ([]order.StatusHistoryEntry, error)
}
