// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MemberRepoFactory provides access to member repository within a transaction.
	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// ItemRepoFactory provides access to item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MemberUoW manages transactions for member-only operations.
	// Used when commands only modify member aggregates.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	// MemberUoWFactory creates new member unit of work instances.
	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for item-only operations.
	// Used when commands only modify catalog items.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions for operations on existing orders and
	// the items whose stock they affect.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across member, item and order aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   memberRepo := uow.MemberRepository()
	//   itemRepo := uow.ItemRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
