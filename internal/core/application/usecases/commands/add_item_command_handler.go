package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// AddItemCommandHandler handles the business logic for adding catalog items.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	cmd, _ := NewAddItemCommand(kernel.NewUUID(), "JPA Book", 20000, 100,
//	    item.BookKind, item.Details{Author: "kim", ISBN: "10929"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("item creation failed: %w", err)
//	}
type AddItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewAddItemCommandHandler creates a handler for catalog item creation.
// Requires an ItemUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory ItemUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
// Creates the item with its initial stock and persists it in a transaction.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	newItem, err := item.NewItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.Stock(), cmd.Kind(), cmd.Details())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
