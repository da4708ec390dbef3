package commands

import (
	"context"
)

// OccupyTableCommandHandler handles the business logic for seating a party.
// Loads the table, marks it occupied with the requested guest count, and
// persists the change transactionally.
type OccupyTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewOccupyTableCommandHandler creates a handler for table occupancy operations.
func NewOccupyTableCommandHandler(uowFactory TableUoWFactory) OccupyTableCommandHandler {
	return OccupyTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the occupy table command.
// Returns an ObjectNotFoundError if the table does not exist and an
// InvalidStateError if the guest count is negative.
func (h *OccupyTableCommandHandler) Handle(ctx context.Context, cmd OccupyTableCommand) error {
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
	tbl, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	if err = tbl.Occupy(cmd.NumberOfGuests()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
