package commands

import (
	"context"

	"dinein/internal/pkg/errs"
)

// ClearTableCommandHandler handles manual table clearing.
// Refuses to vacate a table that still has unfinished orders; those tables
// are released automatically when their last order completes.
type ClearTableCommandHandler struct {
	uowFactory UoWFactory
}

// NewClearTableCommandHandler creates a handler for manual table clearing.
// Requires a UoWFactory because the guard inspects the table's orders.
func NewClearTableCommandHandler(uowFactory UoWFactory) ClearTableCommandHandler {
	return ClearTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear table command.
// Locks the table row, then verifies every order seated at the table has
// finished before marking it vacant. The lock keeps a concurrent order
// creation or completion from interleaving with the check.
func (h ClearTableCommandHandler) Handle(ctx context.Context, cmd ClearTableCommand) error {
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

	tableRepo := uow.TableRepository()
	ordersRepo := uow.OrderRepository()

	tbl, err := tableRepo.GetForUpdate(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	orders, err := ordersRepo.GetAllByTableID(ctx, tbl.ID())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if !o.Status().IsCompleted() {
			return errs.NewInvalidStateError(
				"table cannot be cleared while it has unfinished orders",
			)
		}
	}

	tbl.Clear()

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
