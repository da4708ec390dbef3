package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var (
	ErrCreateTableCommandIsNotConstructed = errors.New(
		"CreateTableCommand must be created via NewCreateTableCommand constructor",
	)
	ErrTableNameIsRequired = errors.New("table name is required")
)

// CreateTableCommand represents a request to register a new seating unit.
// New tables always start vacant with zero guests.
//
// Example:
//
//	tableID := kernel.NewUUID()
//	cmd, err := NewCreateTableCommand(tableID, "Window 2")
//	if err != nil {
//	    return fmt.Errorf("invalid table data: %w", err)
//	}
//
//	handler := NewCreateTableCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create table: %w", err)
//	}
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a new table.
// Validates that the table ID is valid and the name is not empty.
func NewCreateTableCommand(tableID kernel.UUID, name string) (CreateTableCommand, error) {
	tableCommand := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tableCommand.setTableID(tableID),
		tableCommand.setName(name),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTableCommandIsNotConstructed if validation fails.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// TableID returns the unique identifier for the table.
func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Name returns the display name of the table.
func (c CreateTableCommand) Name() string {
	return c.name
}

func (c *CreateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateTableCommand) setName(name string) error {
	if name == "" {
		return ErrTableNameIsRequired
	}

	c.name = name
	return nil
}
