package commands

import (
	"dinein/internal/pkg/guard"
	"errors"
)

var ErrReleaseTablesCommandIsNotConstructed = errors.New(
	"ReleaseTablesCommand must be created via NewReleaseTablesCommand constructor",
)

// ReleaseTablesCommand triggers a reconciliation sweep over occupied tables.
// Any table whose orders have all been completed is vacated. The sweep backs
// up the per-completion release in case a release was missed.
//
// Example:
//
//	cmd := NewReleaseTablesCommand()
//	handler := NewReleaseTablesCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Table sweep failed: %v", err)
//	}
type ReleaseTablesCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseTablesCommand creates a new command to trigger the table sweep.
// This is a parameterless command; it inspects every occupied table.
func NewReleaseTablesCommand() ReleaseTablesCommand {
	return ReleaseTablesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseTablesCommandIsNotConstructed if validation fails.
func (c *ReleaseTablesCommand) Validate() error {
	return c.guard.Validate(
		ErrReleaseTablesCommandIsNotConstructed,
	)
}
