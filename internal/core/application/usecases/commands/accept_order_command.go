package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents staff acknowledging a waiting order,
// committing the kitchen to preparing it.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a waiting order.
func NewAcceptOrderCommand(orderID kernel.UUID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := acceptCommand.setOrderID(orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
