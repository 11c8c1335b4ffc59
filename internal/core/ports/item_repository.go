package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items and
// their stock counters.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, it *item.Item) error

	// Update persists changes to an existing item, including the stock
	// counter.
	Update(ctx context.Context, it *item.Item) error

	// Get retrieves an item by id without locking. Suitable for reads that
	// do not mutate stock.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetForUpdate retrieves an item by id with a row-level lock held until
	// the enclosing transaction ends. Every operation that reserves or
	// releases stock must load the item this way so concurrent reservations
	// against the same item are serialized; without the lock two
	// reservations can both pass the non-negative check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
