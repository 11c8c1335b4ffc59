package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMembersQueryHandler lists registered members straight from the
// members table.
type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMembersQueryHandler creates a handler for member listing.
// Requires a GORM database connection for query execution.
func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle executes the query to retrieve all members sorted by name.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			city,
			street,
			zipcode
		FROM members
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var memberResp GetAllMembersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&memberResp.Name,
			&memberResp.City,
			&memberResp.Street,
			&memberResp.Zipcode,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		memberResp.ID = memberID
		members = append(members, memberResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
