package commands

import (
	"context"
)

// ChangeNumberOfGuestsCommandHandler handles guest count corrections.
// The table must already be occupied; vacant tables reject the change.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeNumberOfGuestsCommandHandler creates a handler for guest count adjustments.
func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the change number of guests command.
// Returns an ObjectNotFoundError if the table does not exist, a
// ValueIsInvalidError for a negative count, and an InvalidStateError
// when the table is vacant.
func (h *ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeNumberOfGuestsCommand) error {
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

	if err = tbl.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
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
