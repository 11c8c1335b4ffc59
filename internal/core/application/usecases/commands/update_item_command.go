package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to change an existing item's name,
// price, and stock counter. The item is loaded, mutated through its own
// methods, and saved back; the command never carries a detached copy of the
// aggregate.
//
// Example:
//
//	cmd, err := NewUpdateItemCommand(itemID, "New Title", 12000, 50)
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	handler := NewUpdateItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update item: %w", err)
//	}
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	price  int
	stock  int

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item.
// Applies the same field validation rules as item creation.
func NewUpdateItemCommand(itemID kernel.UUID, name string, price, stock int) (UpdateItemCommand, error) {
	itemCommand := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStock(stock),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemCommandIsNotConstructed if validation fails.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c UpdateItemCommand) Price() int {
	return c.price
}

// Stock returns the new stock quantity.
func (c UpdateItemCommand) Stock() int {
	return c.stock
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
