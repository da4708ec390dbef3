package table

import (
	"errors"
	"fmt"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
)

var (
	// ErrTableIsNotConstructed is returned when a Table instance was not created through
	// the NewTable factory method. This ensures all tables are properly validated.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")
)

// Table represents a seating unit in the restaurant. It is the aggregate root
// that manages occupancy state and the number of seated guests.
//
// Table follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Number of guests is never negative
//   - Guests may only be seated while the table is occupied
//   - Clearing forces the table back to unoccupied with zero guests
//
// The occupancy flag is coupled to the order lifecycle: once dine-in orders
// reference an occupied table, the table is released only through order
// completion (see the table release policy), never by direct mutation.
type Table struct {
	// id is the unique identifier for the table
	id kernel.UUID

	// name is the human-readable table label, e.g. "table-1"
	name string

	// occupied reports whether guests are currently seated
	occupied bool

	// numberOfGuests is the seated guest count (zero while unoccupied)
	numberOfGuests int

	// isConstructed ensures the table was created via NewTable or RestoreTable
	isConstructed bool
}

// NewTable creates a new Table instance with validation. This is the only way
// to create a valid Table. New tables start unoccupied with zero guests.
//
// Parameters:
//   - id: Unique identifier for the table (must be valid UUID)
//   - name: Human-readable table label (must not be empty)
//
// Returns:
//   - *Table: The created table if all validations pass
//   - error: Validation error if any parameter is invalid
func NewTable(id kernel.UUID, name string) (*Table, error) {
	table := &Table{
		isConstructed: true,
	}

	if err := errors.Join(
		table.setID(id),
		table.setName(name),
	); err != nil {
		return nil, err
	}

	return table, nil
}

// RestoreTable reconstructs a Table from persisted state.
// It validates the occupancy invariant: a positive guest count is only legal
// while the table is occupied.
func RestoreTable(id kernel.UUID, name string, occupied bool, numberOfGuests int) (*Table, error) {
	table, err := NewTable(id, name)
	if err != nil {
		return nil, err
	}

	if numberOfGuests < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("numberOfGuests",
			fmt.Errorf("%d is negative", numberOfGuests))
	}
	if numberOfGuests > 0 && !occupied {
		return nil, errs.NewValueIsInvalidErrorWithCause("numberOfGuests",
			fmt.Errorf("%d guests seated at an unoccupied table", numberOfGuests))
	}

	table.occupied = occupied
	table.numberOfGuests = numberOfGuests
	return table, nil
}

// Validate ensures the Table instance was properly constructed through NewTable.
// This prevents bypassing validation by directly instantiating the struct.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}

	return nil
}

// IsEqual compares two tables by their unique identifiers.
func (t *Table) IsEqual(other *Table) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Name returns the table's label.
func (t *Table) Name() string {
	return t.name
}

// Occupied reports whether guests are currently seated at the table.
func (t *Table) Occupied() bool {
	return t.occupied
}

// NumberOfGuests returns the seated guest count.
func (t *Table) NumberOfGuests() int {
	return t.numberOfGuests
}

// Occupy seats guests at the table, marking it occupied.
//
// Business rules:
//   - The guest count must not be negative
//   - Re-occupying an already occupied table updates the guest count
//
// Returns an InvalidStateError if the guest count is negative.
func (t *Table) Occupy(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewInvalidStateErrorWithCause("table cannot be occupied",
			fmt.Errorf("number of guests %d is negative", numberOfGuests))
	}

	t.occupied = true
	t.numberOfGuests = numberOfGuests
	return nil
}

// ChangeNumberOfGuests updates the guest count of an occupied table.
//
// Business rules:
//   - The table must currently be occupied
//   - The guest count must not be negative
//
// Returns an InvalidStateError when the table is unoccupied and a
// ValueIsInvalidError when the guest count is negative.
func (t *Table) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("numberOfGuests",
			fmt.Errorf("%d is negative", numberOfGuests))
	}
	if !t.occupied {
		return errs.NewInvalidStateError("cannot change number of guests of an unoccupied table")
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

// Clear releases the table unconditionally: unoccupied, zero guests.
//
// Callers are responsible for enforcing the release invariant (every order
// referencing the table is completed) before clearing; the table itself does
// not see its orders. See services.TableReleasePolicy.
func (t *Table) Clear() {
	t.occupied = false
	t.numberOfGuests = 0
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}
