// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// This package implements the repository pattern for the member domain aggregate, handling
// the conversion between domain entities and database representations.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting member aggregates.
// The unique index on name is the authoritative duplicate-registration guard;
// the handler-level name check only provides a friendlier error on the common path.
//
// The member's order list is not stored here: it is a derived view rebuilt
// from the orders table on load.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents the embedded home address within the member table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// fromDomain converts a member domain aggregate to its database representation.
// The derived order view is intentionally dropped; it lives in the orders table.
func fromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Address: AddressDTO{
			City:    m.Address().City(),
			Street:  m.Address().Street(),
			Zipcode: m.Address().Zipcode(),
		},
	}
}

// toDomain converts a database DTO to a member domain aggregate.
// orderIDs carries the identifiers of the member's orders, loaded separately
// from the orders table.
func toDomain(dto MemberDTO, orderIDs []kernel.UUID) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address, orderIDs)
}
