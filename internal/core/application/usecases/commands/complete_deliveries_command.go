package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand marks all outstanding deliveries as completed.
// This batch operation closes the cancellation window for the affected orders.
//
// Example:
//
//	cmd := NewCompleteDeliveriesCommand()
//	handler := NewCompleteDeliveriesCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delivery completion failed: %v", err)
//	}
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a command to complete pending deliveries.
// This is a parameterless command that processes all orders with a ready delivery.
func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	command := CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveriesCommandIsNotConstructed if validation fails.
func (c *CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}
