package commands

import (
	"context"
)

// CompleteDeliveriesCommandHandler marks every ready delivery as completed.
// Cancelled orders never appear in the ready set because cancellation is
// rejected on completed deliveries and cancelling a placed order leaves its
// delivery untouched but removes the order from the placed set.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for the delivery
// completion batch. Requires an OrderUoWFactory for transactional persistence.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Retrieves all placed orders with a ready delivery and completes each one.
// All updates occur within a single transaction.
func (h *CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
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

	orders, err := orderRepo.GetAllWithReadyDelivery(ctx)
	if err != nil {
		return err
	}

	for _, pending := range orders {
		if err = pending.CompleteDelivery(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, pending); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
