package item

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than the item has in stock. The stock counter is left unchanged.
	ErrInsufficientStock = errors.New("not enough stock")

	// ErrNameIsRequired is returned when an item is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Details carries the kind-specific descriptive fields of an item, flattened
// the way a single-table mapping stores them. Which fields are meaningful
// depends on the item's Kind; the rest stay empty.
type Details struct {
	Author   string
	ISBN     string
	Artist   string
	Director string
	Actor    string
}

// Item is the aggregate root for a sellable product and its stock ledger.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must be positive
//   - Stock quantity never goes negative: Reserve fails instead
//   - Stock is mutated only through Reserve, Release, and Restock
//   - Can only be created through NewItem or RestoreItem
//
// Items outlive the orders that reference them; an order holds an item
// reference, never ownership.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// name is the display name of the item
	name string

	// price is the current unit price; orders snapshot it at placement
	price int

	// stock is the number of units available for reservation
	stock int

	// kind discriminates the item variant
	kind Kind

	// details holds the kind-specific descriptive fields
	details Details

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates an Item with validation. This is the only way to create a
// valid item for a new product; RestoreItem rehydrates persisted ones.
func NewItem(id kernel.UUID, name string, price, stock int, kind Kind, details Details) (*Item, error) {
	item := &Item{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setStock(stock),
		item.setKind(kind),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// NewBook creates a Book item. Convenience wrapper over NewItem.
func NewBook(id kernel.UUID, name string, price, stock int, author, isbn string) (*Item, error) {
	return NewItem(id, name, price, stock, BookKind, Details{Author: author, ISBN: isbn})
}

// RestoreItem reconstructs an Item from persistence. The same invariants as
// NewItem apply; a row that violates them fails rehydration.
func RestoreItem(id kernel.UUID, name string, price, stock int, kind Kind, details Details) (*Item, error) {
	return NewItem(id, name, price, stock, kind, details)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current unit price.
func (i *Item) Price() int {
	return i.price
}

// Stock returns the number of units currently available.
func (i *Item) Stock() int {
	return i.stock
}

// Kind returns the item variant discriminator.
func (i *Item) Kind() Kind {
	return i.kind
}

// Details returns the kind-specific descriptive fields.
func (i *Item) Details() Details {
	return i.details
}

// Reserve decrements stock by quantity to account for an outstanding order.
//
// The reservation is all-or-nothing: if quantity exceeds the available
// stock the method fails with ErrInsufficientStock and the counter is left
// unchanged. Concurrent reservations against the same item must be
// serialized by the caller's unit of work (row-level locking); this check
// alone cannot prevent two racing reservations from both passing.
func (i *Item) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	rest := i.stock - quantity
	if rest < 0 {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, i.stock)
	}

	i.stock = rest
	return nil
}

// Release returns quantity units to stock after a cancellation. The restock
// is unconditional: there is no upper bound on the counter.
func (i *Item) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.stock += quantity
	return nil
}

// Rename changes the item's display name. Orders are unaffected; line items
// reference the item by id.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// ChangePrice changes the item's current unit price. Existing orders keep
// their snapshot price.
func (i *Item) ChangePrice(price int) error {
	return i.setPrice(price)
}

// Restock overwrites the stock counter. This is an administrative operation
// for catalog maintenance, not part of the reserve/release ledger.
func (i *Item) Restock(stock int) error {
	return i.setStock(stock)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}
