package queries

import (
	"context"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindOrdersQueryHandler searches orders by member name and status.
// Joins the members table for the display name and aggregates line item
// snapshots into the order total, all in a single SQL statement.
//
// Example:
//
//	handler := NewFindOrdersQueryHandler(db)
//	query, _ := NewFindOrdersQuery("", order.Placed)
//
//	placedOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type FindOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindOrdersQueryHandler creates a handler for order searches.
// Requires a GORM database connection for query execution.
func NewFindOrdersQueryHandler(db *gorm.DB) FindOrdersQueryHandler {
	return FindOrdersQueryHandler{db: db}
}

// Handle executes the order search.
// Results are sorted newest first.
func (h FindOrdersQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersQuery,
) ([]FindOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			m.name,
			o.status,
			o.ordered_at,
			COALESCE(SUM(li.unit_price * li.quantity), 0) AS total_price
		FROM orders o
		JOIN members m ON m.id = o.member_id
		LEFT JOIN line_items li ON li.order_id = o.id
	`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if query.MemberName() != "" {
		conditions = append(conditions, "m.name = ?")
		args = append(args, query.MemberName())
	}
	if query.Status() != order.Unknown {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(query.Status()))
	}
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	sql += `
		GROUP BY o.id, m.name, o.status, o.ordered_at
		ORDER BY o.ordered_at DESC, o.id
	`

	orders := make([]FindOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp FindOrdersQueryResponse
		var id uuid.UUID
		var status int
		var orderedAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.MemberName,
			&status,
			&orderedAt,
			&orderResp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()
		orderResp.OrderedAt = orderedAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
