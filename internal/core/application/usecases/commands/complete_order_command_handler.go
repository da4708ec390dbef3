package commands

import (
	"context"
	"log/slog"

	"dinein/internal/core/domain/services"
	"dinein/internal/core/ports"
)

// CompleteOrderCommandHandler orchestrates order completion and table release.
// Marks a served order as completed, then evaluates whether the table can be
// vacated: a table is released only when every order seated at it is
// completed. Both changes commit in one transaction; the cleared-table
// notification is sent only after the commit is durable.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewCompleteOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("completion failed: %w", err)
//	}
//	// The table is vacant if this was its last unfinished order
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.CompletionNotifier
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires a UoWFactory spanning both aggregates, a CompletionNotifier for
// the post-commit cleared-table event, and a logger for notification failures.
func NewCompleteOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.CompletionNotifier,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the complete order command.
// Completes the order, locks the table row, and re-reads every sibling order
// under that lock so two racing completions serialize instead of both seeing
// the other's order unfinished. If the full sibling set is completed the
// table is cleared in the same transaction. A notification failure after
// commit is logged, never returned: the completion already happened.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = o.Complete(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.GetForUpdate(ctx, o.TableID())
	if err != nil {
		return err
	}

	siblings, err := ordersRepo.GetAllByTableID(ctx, tbl.ID())
	if err != nil {
		return err
	}

	released, err := services.NewTableReleasePolicy().Release(tbl, siblings)
	if err != nil {
		return err
	}

	if released {
		if err = tableRepo.Update(ctx, tbl); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if released {
		if err = h.notifier.TableCleared(ctx, o.ID()); err != nil {
			h.logger.ErrorContext(ctx, "table cleared notification failed",
				"orderID", o.ID().String(),
				"tableID", tbl.ID().String(),
				"error", err)
		}
	}

	return nil
}
