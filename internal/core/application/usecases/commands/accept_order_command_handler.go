package commands

import (
	"context"
)

// AcceptOrderCommandHandler advances a waiting order to "accepted".
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept order command.
// Returns an ObjectNotFoundError if the order does not exist and an
// InvalidStateError if the order is not waiting.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = o.Accept(); err != nil {
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
