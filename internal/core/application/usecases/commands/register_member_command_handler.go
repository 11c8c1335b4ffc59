package commands

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/member"
)

// ErrMemberAlreadyExists is returned when a member with the same name is
// already registered. The handler check is a fast path; the storage layer's
// unique index is the authoritative guard under concurrent registrations.
var ErrMemberAlreadyExists = errors.New("member with the same name already exists")

// RegisterMemberCommandHandler handles the business logic for member registration.
// Rejects duplicate names and persists the new member within a transaction.
//
// Example:
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	cmd, _ := NewRegisterMemberCommand(kernel.NewUUID(), "kim", addr)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("member registration failed: %w", err)
//	}
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
// Requires a MemberUoWFactory for transactional persistence.
func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command.
// Checks for an existing member with the same name before persisting.
func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	existing, err := memberRepo.GetByName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ErrMemberAlreadyExists
	}

	newMember, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, newMember); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
