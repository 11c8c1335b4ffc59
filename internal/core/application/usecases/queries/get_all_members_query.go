// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database, returning lightweight response structs.
package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetAllMembersQueryIsNotConstructed = errors.New(
	"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
)

// GetAllMembersQuery retrieves every registered member.
//
// Example:
//
//	query := NewGetAllMembersQuery()
//	handler := NewGetAllMembersQueryHandler(db)
//
//	members, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list members: %w", err)
//	}
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMembersQuery creates a query to list all members.
func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllMembersQueryIsNotConstructed if validation fails.
func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

// GetAllMembersQueryResponse represents a single member row.
type GetAllMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	City    string
	Street  string
	Zipcode string
}
