package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Loads the full order aggregate, cancels it, and persists both the order and
// the items whose stock the cancellation released. The repository loads the
// referenced items with row locks, so the stock release is serialized against
// concurrent reservations.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, order.ErrDeliveryAlreadyCompleted) {
//	        // too late, the goods are delivered
//	    }
//	    return err
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for coordinating order and item repositories.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Rejects cancellation of already cancelled orders and of orders whose
// delivery has completed. On success every line item's stock is back in the
// item counters before commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, lineItem := range existing.LineItems() {
		if err = itemRepo.Update(ctx, lineItem.Item()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
