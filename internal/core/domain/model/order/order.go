package order

import (
	"errors"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a dine-in order in the system. It is the aggregate root that
// manages the order lifecycle from creation through acceptance and serving to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a valid table by identifier (no live object reference,
//     the table is resolved through its repository at the moment of need)
//   - Must contain at least one line item; insertion order is preserved
//   - Line items are immutable after creation
//   - Status transitions follow the Waiting -> Accepted -> Served -> Completed
//     workflow; an order is never mutated after Completed
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID references the table the order is seated at
	tableID kernel.UUID

	// orderDateTime is the creation instant of the order
	orderDateTime time.Time

	// status represents the current state in the order lifecycle
	status Status

	// lineItems is the ordered sequence of (menu, quantity, price) entries
	lineItems []LineItem

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order starts in Waiting status with orderDateTime set to the supplied
// creation instant. Line items are copied verbatim; the caller's slice is not
// retained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - tableID: Identifier of the table the order is seated at (must be valid UUID)
//   - lineItems: At least one line item, each created via NewLineItem
//   - orderDateTime: The creation instant
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, tableID kernel.UUID, lineItems []LineItem, orderDateTime time.Time) (*Order, error) {
	order := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
		order.setLineItems(lineItems),
		order.setOrderDateTime(orderDateTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, bypassing the
// Waiting-status default but still validating every field. This is used by
// repositories when loading orders from the database.
func RestoreOrder(
	id kernel.UUID,
	tableID kernel.UUID,
	lineItems []LineItem,
	orderDateTime time.Time,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, tableID, lineItems, orderDateTime)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the identifier of the table the order is seated at.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// OrderDateTime returns the creation instant of the order.
func (o *Order) OrderDateTime() time.Time {
	return o.orderDateTime
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns the order's line items in insertion order.
// A copy is returned so the aggregate's items cannot be mutated from outside.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Accept transitions the order from Waiting to Accepted.
//
// Returns an InvalidStateError if the order is in any other status.
// No other state is touched by this transition.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Serve transitions the order from Accepted to Served.
//
// Returns an InvalidStateError if the order is in any other status.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order from Served to Completed.
//
// Completed is the final state; after this transition the order is never
// mutated again. Whether the order's table can be released as a consequence
// is decided by the table release policy over the table's full order history,
// not by the order itself.
//
// Returns an InvalidStateError if the order is in any other status.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setOrderDateTime(orderDateTime time.Time) error {
	if orderDateTime.IsZero() {
		return errs.NewValueIsRequiredError("orderDateTime")
	}
	o.orderDateTime = orderDateTime
	return nil
}
