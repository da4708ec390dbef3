package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompletionNotifier struct{ mock.Mock }

func (m *MockCompletionNotifier) TableCleared(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func servedOrder(t *testing.T, tableID kernel.UUID) *order.Order {
	t.Helper()
	o := waitingOrder(t, tableID)
	require.NoError(t, o.Accept())
	require.NoError(t, o.Serve())
	return o
}

func TestCompleteOrderCommandHandler_Handle_LastOrderReleasesTable(t *testing.T) {
	ctx := t.Context()
	tbl := occupiedTable(t, 2)
	o := servedOrder(t, tbl.ID())
	cmd, _ := commands.NewCompleteOrderCommand(o.ID())

	ordersRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	notifier := new(MockCompletionNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		ordersRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetForUpdate", mock.Anything, tbl.ID()).Return(tbl, nil).Once(),
		ordersRepo.On("GetAllByTableID", mock.Anything, tbl.ID()).Return([]*order.Order{o}, nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("TableCleared", mock.Anything, o.ID()).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.False(t, tbl.Occupied())
	assert.Zero(t, tbl.NumberOfGuests())
	ordersRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_SiblingKeepsTableOccupied(t *testing.T) {
	ctx := t.Context()
	tbl := occupiedTable(t, 4)
	o := servedOrder(t, tbl.ID())
	sibling := waitingOrder(t, tbl.ID())
	cmd, _ := commands.NewCompleteOrderCommand(o.ID())

	ordersRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	notifier := new(MockCompletionNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		ordersRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetForUpdate", mock.Anything, tbl.ID()).Return(tbl, nil).Once(),
		ordersRepo.On("GetAllByTableID", mock.Anything, tbl.ID()).
			Return([]*order.Order{o, sibling}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.True(t, tbl.Occupied())
	tableRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "TableCleared", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotServed(t *testing.T) {
	ctx := t.Context()
	o := waitingOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewCompleteOrderCommand(o.ID())

	ordersRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockCompletionNotifier), discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Waiting, o.Status())
}

func TestCompleteOrderCommandHandler_Handle_NotificationFailureIsNotAnError(t *testing.T) {
	ctx := t.Context()
	tbl := occupiedTable(t, 2)
	o := servedOrder(t, tbl.ID())
	cmd, _ := commands.NewCompleteOrderCommand(o.ID())

	ordersRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	notifier := new(MockCompletionNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		ordersRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("GetForUpdate", mock.Anything, tbl.ID()).Return(tbl, nil).Once(),
		ordersRepo.On("GetAllByTableID", mock.Anything, tbl.ID()).Return([]*order.Order{o}, nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("TableCleared", mock.Anything, o.ID()).Return(errors.New("broker down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, tbl.Occupied())
	notifier.AssertExpectations(t)
}
