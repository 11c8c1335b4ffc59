package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Loads the member and the item, reserves stock, snapshots the current price
// into a line item, and persists the new order aggregate. The item is loaded
// with a row lock so concurrent reservations against the same item are
// serialized; if the reservation fails the transaction rolls back and the
// stock counter is untouched.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), memberID, itemID, 2)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, item.ErrInsufficientStock) {
//	        // not enough units on hand
//	    }
//	    return err
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for coordinating member, item and order repositories.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The delivery destination is the member's registered address and the line
// item's unit price is the item's price at this moment. Stock reservation,
// order creation and persistence all happen in one transaction.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderingMember, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	orderedItem, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), orderingMember.Address())
	if err != nil {
		return err
	}

	lineItem, err := order.NewLineItem(kernel.NewUUID(), orderedItem, orderedItem.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), orderingMember, delivery, lineItem)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, orderedItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
