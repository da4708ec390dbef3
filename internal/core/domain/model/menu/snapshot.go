// Package menu provides the read-only menu snapshot consumed by the order core.
// The snapshot captures a menu's visibility and price at a single instant; it
// is fetched at order-creation time, used to validate line items, and never
// stored. Menu ownership (CRUD, pricing rules) lives outside this module.
package menu

import (
	"errors"
	"fmt"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot was not created
// through the NewSnapshot factory function.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")

// Snapshot is a point-in-time view of a menu: its identity, display name,
// whether it is currently purchasable, and its current price.
//
// Snapshot is an immutable value object. The order core treats it as a fact
// about the moment of order creation, not as an owned entity.
type Snapshot struct { //nolint:recvcheck //using for validation
	menuID    kernel.UUID
	name      string
	displayed bool
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewSnapshot creates a menu snapshot.
//
// Parameters:
//   - menuID: Identifier of the menu (must be valid UUID)
//   - name: Display name of the menu
//   - displayed: Whether the menu is currently purchasable
//   - price: Current menu price (must be constructed)
func NewSnapshot(menuID kernel.UUID, name string, displayed bool, price kernel.Price) (Snapshot, error) {
	if err := errors.Join(
		menuID.Validate(),
		price.Validate(),
	); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		menuID:    menuID,
		name:      name,
		displayed: displayed,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Snapshot was created through the constructor.
func (s Snapshot) Validate() error {
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}

// MenuID returns the identifier of the menu.
func (s Snapshot) MenuID() kernel.UUID {
	return s.menuID
}

// Name returns the display name of the menu.
func (s Snapshot) Name() string {
	return s.name
}

// Displayed reports whether the menu is currently purchasable.
func (s Snapshot) Displayed() bool {
	return s.displayed
}

// Price returns the current menu price.
func (s Snapshot) Price() kernel.Price {
	return s.price
}

// EnsureDisplayed fails with an InvalidStateError when the menu is hidden.
// Hidden menus cannot be ordered.
func (s Snapshot) EnsureDisplayed() error {
	if !s.displayed {
		return errs.NewInvalidStateErrorWithCause("menu cannot be ordered",
			fmt.Errorf("menu %s is not displayed", s.menuID))
	}
	return nil
}

// EnsurePrice fails with a ValueIsInvalidError when the supplied price does
// not exactly equal the snapshot price. Order line items must carry the menu
// price as it was at order time.
func (s Snapshot) EnsurePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !s.price.IsEqual(price) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("supplied price %s does not match menu price %s", price, s.price))
	}
	return nil
}
