package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
)

// MenuClient provides point-in-time menu snapshots to the order core.
// The menu catalog itself is owned elsewhere; the order core only consumes
// visibility and price facts at order-creation time.
//
// Lookups are fast synchronous reads with no retry policy at this layer:
// a missing menu is a terminal validation failure surfaced as an
// ObjectNotFoundError.
type MenuClient interface {
	// Get fetches the current snapshot of the menu with the given identifier.
	Get(ctx context.Context, menuID kernel.UUID) (menu.Snapshot, error)
}
