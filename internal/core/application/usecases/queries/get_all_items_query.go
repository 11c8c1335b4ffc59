package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery retrieves the full item catalog with current stock levels.
//
// Example:
//
//	query := NewGetAllItemsQuery()
//	handler := NewGetAllItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list items: %w", err)
//	}
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllItemsQuery creates a query to list the catalog.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllItemsQueryIsNotConstructed if validation fails.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

// GetAllItemsQueryResponse represents a single catalog row.
// Kind is the item's variant name ("Book", "Album", "Movie").
type GetAllItemsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price int
	Stock int
	Kind  string
}
