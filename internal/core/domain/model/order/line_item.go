package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem binds an item reference, a unit-price snapshot, and a quantity.
// It is owned by exactly one order and created together with it.
//
// The unit price is snapshotted at creation, so later changes to the item's
// catalog price never affect an existing order. The item itself is only
// referenced: items outlive orders.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// item is the non-owning reference to the catalog item
	item *item.Item

	// unitPrice is the immutable price snapshot taken at creation
	unitPrice int

	// quantity is the number of units ordered
	quantity int

	// orderID is the back-reference to the owning order
	orderID *kernel.UUID

	// guard ensures the line item was created via a constructor
	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem and reserves stock on the item as part of
// construction. If the reservation fails no line item is produced and the
// item's stock is left untouched; there is no partial reservation.
func NewLineItem(id kernel.UUID, it *item.Item, unitPrice, quantity int) (*LineItem, error) {
	lineItem := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineItem.setID(id),
		lineItem.setItem(it),
		lineItem.setUnitPrice(unitPrice),
		lineItem.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if err := it.Reserve(quantity); err != nil {
		return nil, err
	}

	return lineItem, nil
}

// RestoreLineItem reconstructs a LineItem from persistence. No stock is
// reserved: the reservation already happened when the order was placed.
func RestoreLineItem(id kernel.UUID, it *item.Item, unitPrice, quantity int) (*LineItem, error) {
	lineItem := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineItem.setID(id),
		lineItem.setItem(it),
		lineItem.setUnitPrice(unitPrice),
		lineItem.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return lineItem, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// Item returns the referenced catalog item.
func (li *LineItem) Item() *item.Item {
	return li.item
}

// UnitPrice returns the price snapshot taken when the order was placed.
func (li *LineItem) UnitPrice() int {
	return li.unitPrice
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// OrderID returns the identifier of the owning order, or nil if the line
// item has not been wired into an order yet.
func (li *LineItem) OrderID() *kernel.UUID {
	return li.orderID
}

// TotalPrice returns unit price snapshot times quantity.
func (li *LineItem) TotalPrice() int {
	return li.unitPrice * li.quantity
}

// Cancel releases the reserved quantity back to the item's stock.
//
// This layer does NOT guarantee idempotency: calling Cancel twice releases
// the stock twice. The owning order is responsible for calling it exactly
// once per cancellation, which its status machine enforces.
func (li *LineItem) Cancel() error {
	return li.item.Release(li.quantity)
}

// setOrder records the owning order's back-reference. Called only by the
// order aggregate while wiring both sides of the 1-N link.
func (li *LineItem) setOrder(orderID kernel.UUID) {
	li.orderID = &orderID
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	li.item = it
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice int) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is not greater than 0", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
