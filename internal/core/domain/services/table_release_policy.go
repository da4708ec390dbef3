package services

import (
	"fmt"

	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/pkg/errs"
)

// TableReleasePolicy is the domain service that decides whether a table can be
// released back to the floor. A table is released only when every dine-in
// order seated at it has reached the Completed status.
//
// The policy re-evaluates the complete sibling set on every invocation rather
// than tracking increments, so it is idempotent and independent of the order
// in which siblings complete: the table clears exactly once, on whichever
// completion happens to be last.
//
// Key responsibilities:
//   - Validating the table and every order passed to it
//   - Rejecting orders that belong to a different table
//   - Clearing the table atomically within the caller's transaction
//
// Example usage:
//
//	policy := services.NewTableReleasePolicy()
//	released, err := policy.Release(tbl, siblingOrders)
//	if err != nil {
//	    // Handle validation failure
//	}
//	if released {
//	    // Persist the cleared table and notify listeners
//	}
type TableReleasePolicy struct{}

// NewTableReleasePolicy creates a new TableReleasePolicy instance.
func NewTableReleasePolicy() TableReleasePolicy {
	return TableReleasePolicy{}
}

// Release inspects the complete set of orders seated at the table and clears
// the table when all of them are completed.
//
// Parameters:
//   - tbl: The table under evaluation (must be valid)
//   - orders: Every order referencing the table, in any order
//
// Returns:
//   - bool: true if the table was cleared by this call
//   - error: Validation error if the table or any order is invalid, or if an
//     order belongs to a different table
//
// A table with no orders at all is left untouched: guests may have been
// seated without ordering yet, and releasing them is a host decision, not an
// order lifecycle consequence. A table that is already vacant reports false,
// so a concurrent completion that lost the race does not observe a fresh
// release.
func (p TableReleasePolicy) Release(tbl *table.Table, orders []*order.Order) (bool, error) {
	if err := tbl.Validate(); err != nil {
		return false, err
	}

	if !tbl.Occupied() {
		return false, nil
	}

	if len(orders) == 0 {
		return false, nil
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return false, err
		}
		if !o.TableID().IsEqual(tbl.ID()) {
			return false, errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s is seated at table %s, not %s", o.ID(), o.TableID(), tbl.ID()))
		}
		if !o.Status().IsCompleted() {
			return false, nil
		}
	}

	tbl.Clear()
	return true, nil
}
