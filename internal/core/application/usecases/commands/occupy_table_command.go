package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrOccupyTableCommandIsNotConstructed = errors.New(
	"OccupyTableCommand must be created via NewOccupyTableCommand constructor",
)

// OccupyTableCommand represents a request to seat a party at a table.
// The guest count is range-checked by the table aggregate itself so that
// occupancy rules live in one place.
type OccupyTableCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewOccupyTableCommand creates a command to seat guests at the given table.
// Validates the table ID; the guest count is validated by the aggregate.
func NewOccupyTableCommand(tableID kernel.UUID, numberOfGuests int) (OccupyTableCommand, error) {
	occupyCommand := OccupyTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := occupyCommand.setTableID(tableID); err != nil {
		return OccupyTableCommand{}, err
	}

	occupyCommand.numberOfGuests = numberOfGuests
	return occupyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOccupyTableCommandIsNotConstructed if validation fails.
func (c OccupyTableCommand) Validate() error {
	return c.guard.Validate(ErrOccupyTableCommandIsNotConstructed)
}

// TableID returns the unique identifier of the table to occupy.
func (c OccupyTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// NumberOfGuests returns the size of the party being seated.
func (c OccupyTableCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *OccupyTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
