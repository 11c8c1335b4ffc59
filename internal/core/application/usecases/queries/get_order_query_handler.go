package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches one order with its member, delivery status and
// line item snapshots. Returns errs.ObjectNotFoundError when no order with
// the given id exists.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order lookup.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lineItems, totalPrice, err := h.loadLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.LineItems = lineItems
	resp.TotalPrice = totalPrice

	return resp, nil
}

func (h GetOrderQueryHandler) loadHeader(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id uuid.UUID
	var status, deliveryStatus int
	var orderedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			m.name,
			o.status,
			o.ordered_at,
			d.status
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &resp.MemberName, &status, &orderedAt, &deliveryStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = respID
	resp.Status = order.Status(status).String()
	resp.DeliveryStatus = order.DeliveryStatus(deliveryStatus).String()
	resp.OrderedAt = orderedAt

	return resp, nil
}

func (h GetOrderQueryHandler) loadLineItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderLineItemResponse, int, error) {
	lineItems := make([]GetOrderLineItemResponse, 0)
	totalPrice := 0

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.name,
			li.unit_price,
			li.quantity
		FROM line_items li
		JOIN items i ON i.id = li.item_id
		WHERE li.order_id = ?
		ORDER BY i.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp GetOrderLineItemResponse
		var itemID uuid.UUID
		if err = rows.Scan(&itemID, &lineResp.ItemName, &lineResp.UnitPrice, &lineResp.Quantity); err != nil {
			return nil, 0, err
		}
		lineResp.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return nil, 0, err
		}
		totalPrice += lineResp.UnitPrice * lineResp.Quantity
		lineItems = append(lineItems, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return lineItems, totalPrice, nil
}
