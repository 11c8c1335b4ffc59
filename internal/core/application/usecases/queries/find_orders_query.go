package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrFindOrdersQueryIsNotConstructed = errors.New(
		"FindOrdersQuery must be created via NewFindOrdersQuery constructor",
	)
	ErrStatusFilterIsInvalid = errors.New("status filter must be a known order status")
)

// FindOrdersQuery searches orders with optional filters.
// An empty member name matches every member; an Unknown status matches every
// status. Both filters combine with AND.
//
// Example:
//
//	// all cancelled orders of member "kim"
//	query, err := NewFindOrdersQuery("kim", order.Cancelled)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFindOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type FindOrdersQuery struct { //nolint:recvcheck //using for validation
	memberName string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewFindOrdersQuery creates an order search query.
// The member name may be empty and the status may be order.Unknown; each
// disables the corresponding filter. A non-zero status must be valid.
func NewFindOrdersQuery(memberName string, status order.Status) (FindOrdersQuery, error) {
	query := FindOrdersQuery{
		memberName: memberName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return FindOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindOrdersQueryIsNotConstructed if validation fails.
func (q FindOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersQueryIsNotConstructed)
}

// MemberName returns the member name filter, empty when unfiltered.
func (q FindOrdersQuery) MemberName() string {
	return q.memberName
}

// Status returns the status filter, order.Unknown when unfiltered.
func (q FindOrdersQuery) Status() order.Status {
	return q.status
}

func (q *FindOrdersQuery) setStatus(status order.Status) error {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return errors.Join(ErrStatusFilterIsInvalid, err)
		}
	}

	q.status = status
	return nil
}

// FindOrdersQueryResponse represents a single order search hit.
// TotalPrice is computed from the order's line item snapshots, so it stays
// the same even if catalog prices change after placement.
type FindOrdersQueryResponse struct {
	ID         kernel.UUID
	MemberName string
	Status     string
	TotalPrice int
	OrderedAt  time.Time
}
