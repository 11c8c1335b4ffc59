package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the shipping record exclusively owned by exactly one order.
// It is created together with its order and persisted as part of the same
// aggregate; it never exists on its own.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// address is the shipping destination, defaulted to the member's address
	address kernel.Address

	// status is the shipping state; Ready until shipped out
	status DeliveryStatus

	// orderID is the back-reference to the owning order, set when the order
	// wires the delivery in during construction
	orderID *kernel.UUID

	// guard ensures the delivery was created via a constructor
	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery in Ready status for the given destination.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	delivery := &Delivery{
		status: DeliveryReady,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	delivery, err := NewDelivery(id, address)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	delivery.status = status
	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the shipping destination.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the shipping state.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// OrderID returns the identifier of the owning order, or nil if the
// delivery has not been wired into an order yet.
func (d *Delivery) OrderID() *kernel.UUID {
	return d.orderID
}

// IsCompleted reports whether the delivery has been shipped out.
func (d *Delivery) IsCompleted() bool {
	return d.status == DeliveryCompleted
}

// Complete marks the delivery as shipped out. Only a Ready delivery can be
// completed; Completed is terminal.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// setOrder records the owning order's back-reference. Called only by the
// order aggregate while wiring both sides of the 1-1 link.
func (d *Delivery) setOrder(orderID kernel.UUID) {
	d.orderID = &orderID
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
