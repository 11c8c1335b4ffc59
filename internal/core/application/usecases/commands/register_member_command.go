package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrRegisterMemberCommandIsNotConstructed = errors.New(
		"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// RegisterMemberCommand represents a request to register a new member.
// Encapsulates the member's name and home address; the address later serves
// as the default delivery destination for the member's orders.
//
// Example:
//
//	memberID := kernel.NewUUID()
//	addr, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04000")
//	cmd, err := NewRegisterMemberCommand(memberID, "kim", addr)
//	if err != nil {
//	    return fmt.Errorf("invalid member data: %w", err)
//	}
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register member: %w", err)
//	}
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterMemberCommand creates a command to register a new member.
// Validates that the member ID is valid, the name is not empty, and the
// address is constructed. Returns an error if any validation fails.
func NewRegisterMemberCommand(
	memberID kernel.UUID,
	name string,
	address kernel.Address,
) (RegisterMemberCommand, error) {
	memberCommand := RegisterMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberCommand.setMemberID(memberID),
		memberCommand.setName(name),
		memberCommand.setAddress(address),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterMemberCommandIsNotConstructed if validation fails.
func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

// MemberID returns the unique identifier for the new member.
func (c RegisterMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the member's display name.
func (c RegisterMemberCommand) Name() string {
	return c.name
}

// Address returns the member's home address.
func (c RegisterMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *RegisterMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *RegisterMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
