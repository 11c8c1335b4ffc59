package orderrepo

import (
	"context"
	"errors"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Loading an order rehydrates the whole graph: the delivery, the line items,
// the placing member and the referenced items. Items are loaded through
// GetForUpdate, so inside a transaction their rows stay locked until commit
// and a cancellation can release stock without racing order placement.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate to the database.
// The owned delivery and line item rows are created in the same statement
// through the association mappings.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate to the database.
// Only the mutable parts are written: the order status and the delivery
// status. Line items are immutable after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ?", dto.ID).
		Update("status", dto.Delivery.Status).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full graph.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("LineItems").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.rehydrate(ctx, dto)
}

// GetAllWithReadyDelivery retrieves all placed orders whose delivery is still
// in Ready status.
func (r *GormOrderRepository) GetAllWithReadyDelivery(ctx context.Context) ([]*order.Order, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN deliveries ON deliveries.order_id = orders.id").
		Where("orders.status = ? AND deliveries.status = ?", int(order.Placed), int(order.DeliveryReady)).
		Order("orders.ordered_at").
		Pluck("orders.id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rawIDs))
	for _, raw := range rawIDs {
		orderID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}

		o, getErr := r.Get(ctx, orderID)
		if getErr != nil {
			return nil, getErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// rehydrate loads the member and the referenced items, then maps the DTO
// graph back into the domain aggregate.
func (r *GormOrderRepository) rehydrate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	memberRepo := memberrepo.NewGormMemberRepository(r.db, r.tracker)
	m, err := memberRepo.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	itemRepo := itemrepo.NewGormItemRepository(r.db, r.tracker)
	items := make(map[uuid.UUID]*item.Item, len(dto.LineItems))
	for _, liDto := range dto.LineItems {
		if _, ok := items[liDto.ItemID]; ok {
			continue
		}

		itemID, idErr := kernel.UUIDFromBytes(liDto.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		it, itemErr := itemRepo.GetForUpdate(ctx, itemID)
		if itemErr != nil {
			return nil, itemErr
		}
		items[liDto.ItemID] = it
	}

	return toDomain(dto, m, items)
}
