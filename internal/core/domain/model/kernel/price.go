package kernel

import (
	"fmt"

	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using the NewPrice or PriceFromString constructors to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or PriceFromString constructors")

// Price is an immutable value object representing a non-negative monetary
// amount. It wraps github.com/shopspring/decimal so that menu prices and
// order line item prices compare exactly, without floating point drift.
//
// The zero value of Price is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewPrice(decimal.NewFromInt(19000))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: 19000
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a new Price from a decimal amount.
// The amount must not be negative.
//
// Returns:
//   - Price: A valid price instance
//   - error: Validation error if the amount is negative
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a Price from its decimal string representation,
// for example "19000" or "8500.50". Returns an error if the string is not a
// valid decimal number or the value is negative.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsEqual compares two prices for exact equality.
// The comparison is numeric: 19000 and 19000.00 are equal.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the decimal string representation of the price.
func (p Price) String() string {
	return p.amount.String()
}

// Validate checks if the Price was properly constructed.
// Returns ErrPriceIsNotConstructed for zero-value instances.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
