package commands

import (
	"context"
	"errors"
)

// UpdateItemCommandHandler handles catalog item updates.
// Loads the item with a row lock, applies the changes through the aggregate's
// own methods, and saves it back in the same transaction. The lock is needed
// because the update overwrites the stock counter, which concurrent order
// placement also mutates.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for catalog item updates.
// Requires an ItemUoWFactory for transactional persistence.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update item command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	itemRepo := uow.ItemRepository()

	existing, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		existing.Rename(cmd.Name()),
		existing.ChangePrice(cmd.Price()),
		existing.Restock(cmd.Stock()),
	); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
