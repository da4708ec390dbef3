package commands

import (
	"context"

	"dinein/internal/core/domain/services"
)

// ReleaseTablesCommandHandler sweeps occupied tables and vacates the ones
// whose orders have all finished. Tables that never received an order are
// deliberately left alone: the party may still be deciding.
type ReleaseTablesCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseTablesCommandHandler creates a handler for the table sweep.
// Requires a UoWFactory because the sweep reads orders and updates tables.
func NewReleaseTablesCommandHandler(uowFactory UoWFactory) ReleaseTablesCommandHandler {
	return ReleaseTablesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table sweep command.
// Evaluates every occupied table against its full order set and releases the
// eligible ones. All updates occur within a single transaction.
func (h ReleaseTablesCommandHandler) Handle(ctx context.Context, cmd ReleaseTablesCommand) error {
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

	tables, err := tableRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	releasePolicy := services.NewTableReleasePolicy()
	for _, tbl := range tables {
		if !tbl.Occupied() {
			continue
		}

		orders, err := ordersRepo.GetAllByTableID(ctx, tbl.ID())
		if err != nil {
			return err
		}

		released, err := releasePolicy.Release(tbl, orders)
		if err != nil {
			return err
		}
		if !released {
			continue
		}

		if err = tableRepo.Update(ctx, tbl); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
