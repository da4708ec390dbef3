package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrClearTableCommandIsNotConstructed = errors.New(
	"ClearTableCommand must be created via NewClearTableCommand constructor",
)

// ClearTableCommand represents a manual request to mark a table vacant,
// for example after staff reset a table whose party left without ordering.
// Tables with unfinished orders cannot be cleared this way.
type ClearTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearTableCommand creates a command to manually vacate a table.
func NewClearTableCommand(tableID kernel.UUID) (ClearTableCommand, error) {
	clearCommand := ClearTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := clearCommand.setTableID(tableID); err != nil {
		return ClearTableCommand{}, err
	}

	return clearCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearTableCommandIsNotConstructed if validation fails.
func (c ClearTableCommand) Validate() error {
	return c.guard.Validate(ErrClearTableCommandIsNotConstructed)
}

// TableID returns the unique identifier of the table to clear.
func (c ClearTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *ClearTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
