package memberrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMemberRepository creates a new GORM member repository.
func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new member to the database.
func (r *GormMemberRepository) Add(ctx context.Context, m *member.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

// Update saves an existing member to the database.
func (r *GormMemberRepository) Update(ctx context.Context, m *member.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	result := r.db.WithContext(ctx).Model(&MemberDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

// Get retrieves a member by ID, rebuilding the derived order view from the
// orders table.
func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id.String())
		}
		return nil, err
	}

	orderIDs, err := r.loadOrderIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderIDs)
}

// GetByName retrieves all members with the given name.
func (r *GormMemberRepository) GetByName(ctx context.Context, name string) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "name = ?", name).Error; err != nil {
		return nil, err
	}

	members := make([]*member.Member, 0, len(dtos))
	for _, dto := range dtos {
		orderIDs, err := r.loadOrderIDs(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		m, err := toDomain(dto, orderIDs)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

// loadOrderIDs fetches the identifiers of the member's orders.
// The orders table is read directly to avoid a dependency on the order
// repository for what is a plain id projection.
func (r *GormMemberRepository) loadOrderIDs(ctx context.Context, memberID uuid.UUID) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("member_id = ?", memberID).
		Order("ordered_at").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		orderID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return orderIDs, nil
}
