package order

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory function.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one (menu, quantity, price) entry within an order.
// It is an immutable value object owned exclusively by its Order; once the
// order is created, line items never change.
//
// The price is the caller-supplied price captured at order time. It must match
// the menu's price at creation, which is validated against the menu snapshot
// before the order is constructed, not here.
//
// Quantity is intentionally unrestricted in sign: dine-in orders permit
// negative quantities. This mirrors the historically tested contract and is
// very likely a latent defect inherited from shared validation logic; it is
// kept deliberately so the documented behavior does not change silently.
type LineItem struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	quantity int64
	price    kernel.Price

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given menu.
//
// Parameters:
//   - menuID: Identifier of the ordered menu (must be valid UUID)
//   - quantity: Ordered amount (any sign, see type documentation)
//   - price: Price captured at order time (must be constructed)
//
// Returns:
//   - LineItem: The created line item if all validations pass
//   - error: Validation error if the menu ID or price is invalid
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Price) (LineItem, error) {
	if err := errors.Join(
		menuID.Validate(),
		price.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuID returns the identifier of the ordered menu.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns the ordered amount.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// Price returns the price captured at order time.
func (li LineItem) Price() kernel.Price {
	return li.price
}
