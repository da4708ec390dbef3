// Package table provides the domain entity for restaurant seating units.
// It implements the Table aggregate root with occupancy management.
//
// Key business rules:
//   - Tables are created unoccupied with zero guests
//   - Guests may only be seated (or re-counted) while the table is occupied
//   - Clearing a table resets it to unoccupied with zero guests
//   - Release of a table with active orders is decided outside the aggregate,
//     by the table release policy over the table's order history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package table
