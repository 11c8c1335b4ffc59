package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *MockItemRepository) Update(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *MockItemRepository) Get(_ context.Context, _ kernel.UUID) (*item.Item, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockItemUoW struct{ mock.Mock }

func (m *MockItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddItemCommand(kernel.NewUUID(), "JPA Book", 20000, 100,
		item.BookKind, item.Details{Author: "kim", ISBN: "10929"})

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemCommand{} // not constructed properly
	factory := new(MockItemUoWFactory)
	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	book, err := item.NewBook(kernel.NewUUID(), "JPA Book", 20000, 100, "kim", "10929")
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateItemCommand(book.ID(), "New Title", 12000, 50)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, book.ID()).Return(book, nil).Once(),
		repo.On("Update", mock.Anything, book).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "New Title", book.Name())
	assert.Equal(t, 12000, book.Price())
	assert.Equal(t, 50, book.Stock())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemCommand(itemID, "New Title", 12000, 50)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, itemID).Return(nil, errors.New("item not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
