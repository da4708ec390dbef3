package commands

import (
	"context"
)

// ServeOrderCommandHandler advances an accepted order to "served".
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for order serving operations.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the serve order command.
// Returns an ObjectNotFoundError if the order does not exist and an
// InvalidStateError if the order has not been accepted.
func (h *ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) error {
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

	ordersRepo := uow.OrderRepository()
	o, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Serve(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
