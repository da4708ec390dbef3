package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrServeOrderCommandIsNotConstructed = errors.New(
	"ServeOrderCommand must be created via NewServeOrderCommand constructor",
)

// ServeOrderCommand represents the kitchen delivering an accepted order
// to its table.
type ServeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewServeOrderCommand creates a command to mark an accepted order as served.
func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	serveCommand := ServeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := serveCommand.setOrderID(orderID); err != nil {
		return ServeOrderCommand{}, err
	}

	return serveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrServeOrderCommandIsNotConstructed if validation fails.
func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to serve.
func (c ServeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ServeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
