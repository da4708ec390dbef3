package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

// ChangeNumberOfGuestsCommand represents a request to correct the guest count
// of an already occupied table.
type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewChangeNumberOfGuestsCommand creates a command to adjust a table's guest count.
// Validates the table ID; the guest count is validated by the aggregate.
func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	changeCommand := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := changeCommand.setTableID(tableID); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	changeCommand.numberOfGuests = numberOfGuests
	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeNumberOfGuestsCommandIsNotConstructed if validation fails.
func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

// TableID returns the unique identifier of the table to adjust.
func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID {
	return c.tableID
}

// NumberOfGuests returns the corrected party size.
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *ChangeNumberOfGuestsCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
