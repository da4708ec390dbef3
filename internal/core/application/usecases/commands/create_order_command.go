package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is one requested menu position within a CreateOrderCommand:
// which menu, how many, and the price the guest saw when ordering.
// The handler checks the price against the live menu snapshot.
type OrderLine struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Price
}

// CreateOrderCommand represents a request to open a new dine-in order.
// Encapsulates the target table and the requested menu positions.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, tableID, []OrderLine{
//	    {MenuID: friedChickenID, Quantity: 2, Price: friedChickenPrice},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuClient)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s is waiting for acceptance", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tableID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order at a table.
// Validates that both IDs are valid and that every line carries a valid
// menu ID and price. Quantity is not range-checked here.
func NewCreateOrderCommand(orderID kernel.UUID, tableID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableID(tableID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableID returns the identifier of the table the party is seated at.
func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.MenuID.Validate(); err != nil {
			return err
		}
		if err := line.Price.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
