// Package ports defines repository and unit-of-work interfaces for the shop
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for members.
type MemberRepository interface {
	// Add persists a new member. The member must be valid and not already
	// exist; the storage layer enforces name uniqueness.
	Add(ctx context.Context, m *member.Member) error

	// Update persists changes to an existing member, including the derived
	// order back-references.
	Update(ctx context.Context, m *member.Member) error

	// Get retrieves a member by id, including the derived order view.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// GetByName retrieves all members with the given name. Used by the
	// duplicate-member check on registration; the check is inherently racy
	// under concurrent joins, so the storage uniqueness constraint is the
	// reliable guard.
	GetByName(ctx context.Context, name string) ([]*member.Member, error)
}
