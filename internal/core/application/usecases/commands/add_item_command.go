package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrPriceIsInvalid     = errors.New("price must be greater than 0")
	ErrStockIsInvalid     = errors.New("stock must not be negative")
)

// AddItemCommand represents a request to add a new item to the catalog.
// Carries the item's pricing, initial stock, and kind-specific details.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewAddItemCommand(itemID, "Effective Go", 10000, 10,
//	    item.BookKind, item.Details{Author: "R. Pike", ISBN: "978-0"})
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	name    string
	price   int
	stock   int
	kind    item.Kind
	details item.Details

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a new catalog item.
// Validates that the item ID is valid, the name is not empty, the price is
// positive, the stock is not negative, and the kind is known.
func NewAddItemCommand(
	itemID kernel.UUID,
	name string,
	price int,
	stock int,
	kind item.Kind,
	details item.Details,
) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setStock(stock),
		itemCommand.setKind(kind),
	); err != nil {
		return AddItemCommand{}, err
	}

	itemCommand.details = details

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's display name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Price returns the item's unit price.
func (c AddItemCommand) Price() int {
	return c.price
}

// Stock returns the item's initial stock quantity.
func (c AddItemCommand) Stock() int {
	return c.stock
}

// Kind returns the item's catalog kind.
func (c AddItemCommand) Kind() item.Kind {
	return c.kind
}

// Details returns the kind-specific attributes.
func (c AddItemCommand) Details() item.Details {
	return c.details
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}

func (c *AddItemCommand) setKind(kind item.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
