package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents settling a served order. Completion may
// release the order's table when no other unfinished orders remain on it.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a served order.
func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
