package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is always stored and loaded as a unit: the order row, its
// delivery, and its line items.
type OrderRepository interface {
	// Add persists a new order aggregate together with its owned delivery
	// and line items (cascading save).
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its owned
	// parts.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by id, rehydrating the full graph:
	// delivery, line items, the referenced items, and the placing member.
	// Within a unit of work the referenced items are loaded with row locks
	// so a subsequent cancellation can release stock safely.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithReadyDelivery retrieves all placed orders whose delivery is
	// still in Ready status. Used by the delivery completion job.
	GetAllWithReadyDelivery(ctx context.Context) ([]*order.Order, error)
}
