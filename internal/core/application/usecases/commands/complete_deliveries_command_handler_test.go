package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleteOrderRepository struct{ mock.Mock }

func (m *MockCompleteOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCompleteOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCompleteOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCompleteOrderRepository) GetAllWithReadyDelivery(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCompleteUoW struct{ mock.Mock }

func (m *MockCompleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCompleteUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockCompleteUoWFactory struct{ mock.Mock }

func (m *MockCompleteUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCompleteDeliveriesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	placed, book := cancelFixtures(t)
	require.False(t, placed.Delivery().IsCompleted())
	cmd := commands.NewCompleteDeliveriesCommand()

	orderRepo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllWithReadyDelivery", mock.Anything).Return([]*order.Order{placed}, nil).Once(),
		orderRepo.On("Update", mock.Anything, placed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveriesCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, placed.Delivery().IsCompleted())
	// the order itself stays placed, completion only closes the cancellation window
	assert.Equal(t, order.Placed, placed.Status())
	assert.Equal(t, 8, book.Stock())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteDeliveriesCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCompleteDeliveriesCommand()

	orderRepo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllWithReadyDelivery", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveriesCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveriesCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCompleteDeliveriesCommand()

	orderRepo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllWithReadyDelivery", mock.Anything).Return(nil, errors.New("db error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveriesCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
