package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned when an order is created without
	// any line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrDeliveryAlreadyAttached is returned when the delivery passed to
	// NewOrder is already owned by another order.
	ErrDeliveryAlreadyAttached = errors.New("delivery is already attached to an order")

	// ErrLineItemAlreadyAttached is returned when a line item passed to
	// NewOrder is already owned by another order.
	ErrLineItemAlreadyAttached = errors.New("line item is already attached to an order")

	// ErrDeliveryAlreadyCompleted is returned when cancelling an order whose
	// delivery has been shipped out. The order is left unchanged.
	ErrDeliveryAlreadyCompleted = errors.New("cannot cancel an order with a completed delivery")
)

// Order is the aggregate root of the order-management core. It owns its
// delivery and line items, references (but does not own) the placing
// member, and is the consistency boundary for every mutation of the group:
// order, delivery, line items, and the referenced items' stock change
// together or not at all within one unit of work.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, member, delivery, and at least
//     one line item
//   - Status transitions Placed -> Cancelled exactly once; Cancelled is
//     terminal
//   - Total price equals the sum of the line items' totals
//   - All bidirectional links (member<->order, order<->line-item,
//     order<->delivery) are wired during construction; a half-wired graph
//     is never observable
//   - Stock release on cancellation happens exactly once, guarded by the
//     status machine
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// member is the non-owning reference to the member who placed the order
	member *member.Member

	// delivery is the shipping record exclusively owned by this order
	delivery *Delivery

	// lineItems are the owned line items, in placement order
	lineItems []*LineItem

	// orderedAt is the placement timestamp
	orderedAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an Order and wires the whole association graph. This is
// the only sanctioned construction path for a new order: it validates every
// part, then updates both sides of each relationship (the member's derived
// order view, each line item's owner reference, the delivery's owner
// reference) before the aggregate becomes visible to the caller. The status
// is set to Placed and orderedAt to the current time, atomically with the
// wiring.
func NewOrder(id kernel.UUID, m *member.Member, delivery *Delivery, lineItems ...*LineItem) (*Order, error) {
	order := &Order{
		status:    Placed,
		orderedAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	if err := order.validateParts(m, delivery, lineItems); err != nil {
		return nil, err
	}

	// All parts validated; wiring cannot fail past this point, so the graph
	// is never observable half-wired.
	order.setMember(m)
	order.setDelivery(delivery)
	for _, lineItem := range lineItems {
		order.addLineItem(lineItem)
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, rewiring the same
// association graph around the restored parts. The member's derived view is
// deduplicated, so restoring is safe whether or not the back-reference was
// already present.
func RestoreOrder(
	id kernel.UUID,
	m *member.Member,
	delivery *Delivery,
	lineItems []*LineItem,
	orderedAt time.Time,
	status Status,
) (*Order, error) {
	order := &Order{
		orderedAt: orderedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if err := order.validateParts(m, delivery, lineItems); err != nil {
		return nil, err
	}

	order.setMember(m)
	order.setDelivery(delivery)
	for _, lineItem := range lineItems {
		order.addLineItem(lineItem)
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed. Prevents
// bypassing the factory by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Member returns the member who placed the order.
func (o *Order) Member() *member.Member {
	return o.member
}

// Delivery returns the owned delivery record.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// LineItems returns the owned line items in placement order.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the sum of every line item's total. The result does
// not depend on line item order.
func (o *Order) TotalPrice() int {
	total := 0
	for _, lineItem := range o.lineItems {
		total += lineItem.TotalPrice()
	}
	return total
}

// Cancel cancels the order and releases the reserved stock of every line
// item.
//
// Cancellation fails with ErrDeliveryAlreadyCompleted if the owned delivery
// has been shipped out, and fails with a status-transition error if the
// order is already cancelled; in both cases order state and stock are left
// unchanged. The status machine permits Placed -> Cancelled exactly once,
// so each line item's stock is released exactly once per order lifetime.
// Within a successful cancellation the releases happen in line item order,
// but they are independent of each other; the enclosing unit of work makes
// the status flip and all releases durable together.
func (o *Order) Cancel() error {
	if o.delivery.IsCompleted() {
		return ErrDeliveryAlreadyCompleted
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, lineItem := range o.lineItems {
		if err := lineItem.Cancel(); err != nil {
			return err
		}
	}

	return nil
}

// CompleteDelivery marks the owned delivery as shipped out. After this the
// order can no longer be cancelled.
func (o *Order) CompleteDelivery() error {
	return o.delivery.Complete()
}

func (o *Order) validateParts(m *member.Member, delivery *Delivery, lineItems []*LineItem) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := delivery.Validate(); err != nil {
		return err
	}
	if delivery.OrderID() != nil && !delivery.OrderID().IsEqual(o.id) {
		return ErrDeliveryAlreadyAttached
	}

	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, lineItem := range lineItems {
		if err := lineItem.Validate(); err != nil {
			return err
		}
		if lineItem.OrderID() != nil && !lineItem.OrderID().IsEqual(o.id) {
			return ErrLineItemAlreadyAttached
		}
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setMember wires both sides of the member-order relationship in one call:
// the order's member reference and the member's derived order view.
func (o *Order) setMember(m *member.Member) {
	o.member = m
	_ = m.AttachOrder(o.id)
}

// addLineItem wires both sides of the order-line-item relationship.
func (o *Order) addLineItem(lineItem *LineItem) {
	o.lineItems = append(o.lineItems, lineItem)
	lineItem.setOrder(o.id)
}

// setDelivery wires both sides of the order-delivery relationship.
func (o *Order) setDelivery(delivery *Delivery) {
	o.delivery = delivery
	delivery.setOrder(o.id)
}
