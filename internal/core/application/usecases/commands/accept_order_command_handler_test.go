package commands_test

import (
	"context"
	"testing"
	"time"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/ports"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func waitingOrder(t *testing.T, tableID kernel.UUID) *order.Order {
	t.Helper()
	lineItem, err := order.NewLineItem(kernel.NewUUID(), 1, mustPrice(t, "16000"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), tableID, []order.LineItem{lineItem}, time.Now())
	require.NoError(t, err)
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := waitingOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewAcceptOrderCommand(o.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAcceptOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	o := waitingOrder(t, kernel.NewUUID())
	require.NoError(t, o.Accept())
	cmd, _ := commands.NewAcceptOrderCommand(o.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
