package queries

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler lists the item catalog with current stock counters.
// Stock values read here are a point-in-time snapshot and may be stale the
// moment a concurrent order commits.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for catalog listing.
// Requires a GORM database connection for query execution.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog items sorted by name.
func (h GetAllItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllItemsQuery,
) ([]GetAllItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock,
			kind
		FROM items
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetAllItemsQueryResponse
		var id uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&itemResp.Name,
			&itemResp.Price,
			&itemResp.Stock,
			&kind,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID
		itemResp.Kind = item.Kind(kind).String()
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
