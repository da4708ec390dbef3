package commands

import (
	"context"

	"dinein/internal/core/domain/model/table"
)

// CreateTableCommandHandler handles the business logic for table registration.
// Creates new tables in vacant state with zero guests.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration operations.
// Requires a TableUoWFactory for transactional persistence.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table registration command.
// Uses a transaction to ensure the table is properly persisted or rolled back on error.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) error {
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
	tbl, err := table.NewTable(cmd.TableID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = tableRepo.Add(ctx, tbl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
