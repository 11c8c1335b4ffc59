package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, newMember *member.Member) error {
	args := m.Called(ctx, newMember)
	return args.Error(0)
}
func (m *MockMemberRepository) Update(_ context.Context, _ *member.Member) error {
	return errors.New("not implemented in mock")
}
func (m *MockMemberRepository) Get(_ context.Context, _ kernel.UUID) (*member.Member, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockMemberRepository) GetByName(ctx context.Context, name string) ([]*member.Member, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*member.Member), args.Error(1)
}

type MockMemberUoW struct{ mock.Mock }

func (m *MockMemberUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMemberUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMemberUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMemberUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

type MockMemberUoWFactory struct{ mock.Mock }

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	args := m.Called()
	return args.Get(0).(commands.MemberUoW)
}

func TestRegisterMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	addr, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04000")
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", addr)

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "kim").Return([]*member.Member{}, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	addr, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04000")
	existing, err := member.NewMember(kernel.NewUUID(), "kim", addr)
	require.NoError(t, err)
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", addr)

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "kim").Return([]*member.Member{existing}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMemberAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterMemberCommand{} // not constructed properly
	factory := new(MockMemberUoWFactory)
	h := commands.NewRegisterMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterMemberCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	addr, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04000")
	cmd, _ := commands.NewRegisterMemberCommand(kernel.NewUUID(), "kim", addr)

	uow := new(MockMemberUoW)
	factory := new(MockMemberUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
