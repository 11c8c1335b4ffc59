// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// The aggregate spans three tables: orders, deliveries and line_items. The
// owned rows are written through GORM associations on create and cascade on
// delete, so an order can never leave orphaned parts behind.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    int       `gorm:"type:int;not null;index"`
	OrderedAt time.Time `gorm:"not null"`

	Delivery  DeliveryDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting deliveries.
// Each order owns exactly one delivery row.
type DeliveryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	City    string    `gorm:"type:varchar(255);not null"`
	Street  string    `gorm:"type:varchar(255);not null"`
	Zipcode string    `gorm:"type:varchar(32);not null"`
	Status  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LineItemDTO represents the database structure for persisting order lines.
// UnitPrice is the immutable price snapshot taken at placement time; it never
// follows later catalog price changes.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitPrice int       `gorm:"type:int;not null"`
	Quantity  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order row together with its owned delivery and line item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	delivery := aggregate.Delivery()
	deliveryDTO := DeliveryDTO{
		ID:      delivery.ID().Bytes(),
		OrderID: orderID,
		City:    delivery.Address().City(),
		Street:  delivery.Address().Street(),
		Zipcode: delivery.Address().Zipcode(),
		Status:  int(delivery.Status()),
	}

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, lineItem := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ID:        lineItem.ID().Bytes(),
			OrderID:   orderID,
			ItemID:    lineItem.Item().ID().Bytes(),
			UnitPrice: lineItem.UnitPrice(),
			Quantity:  lineItem.Quantity(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  aggregate.Member().ID().Bytes(),
		Status:    int(aggregate.Status()),
		OrderedAt: aggregate.OrderedAt(),
		Delivery:  deliveryDTO,
		LineItems: lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// The member and the items referenced by the line items must already be
// loaded; the repository fetches them before mapping.
func toDomain(dto OrderDTO, m *member.Member, items map[uuid.UUID]*item.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDto := range dto.LineItems {
		lineItem, liErr := lineItemToDomain(liDto, items[liDto.ItemID])
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(id, m, delivery, lineItems, dto.OrderedAt, order.Status(dto.Status))
}

// deliveryToDomain converts a delivery DTO to a domain entity.
func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.City, dto.Street, dto.Zipcode)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, address, order.DeliveryStatus(dto.Status))
}

// lineItemToDomain converts a line item DTO to a domain entity.
// Restoring never touches the item's stock counter.
func lineItemToDomain(dto LineItemDTO, it *item.Item) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, it, dto.UnitPrice, dto.Quantity)
}
