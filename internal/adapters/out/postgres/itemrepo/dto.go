// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the item domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
// All item kinds share one table; the kind column discriminates which of the
// detail columns are meaningful. Unused detail columns stay empty.
type ItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Price int       `gorm:"type:int;not null"`
	Stock int       `gorm:"type:int;not null"`
	Kind  int       `gorm:"type:int;not null;index"`

	Author   string `gorm:"type:varchar(255)"`
	ISBN     string `gorm:"type:varchar(64);column:isbn"`
	Artist   string `gorm:"type:varchar(255)"`
	Director string `gorm:"type:varchar(255)"`
	Actor    string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(it *item.Item) ItemDTO {
	details := it.Details()
	return ItemDTO{
		ID:       it.ID().Bytes(),
		Name:     it.Name(),
		Price:    it.Price(),
		Stock:    it.Stock(),
		Kind:     int(it.Kind()),
		Author:   details.Author,
		ISBN:     details.ISBN,
		Artist:   details.Artist,
		Director: details.Director,
		Actor:    details.Actor,
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the aggregate including the kind discriminator using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := item.Details{
		Author:   dto.Author,
		ISBN:     dto.ISBN,
		Artist:   dto.Artist,
		Director: dto.Director,
		Actor:    dto.Actor,
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.Stock, item.Kind(dto.Kind), details)
}
