// Package order provides domain entities and business logic for dine-in order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: An immutable (menu, quantity, price) entry owned by its order
//
// Key business rules:
//   - Orders must have a valid unique identifier, a table reference, and at
//     least one line item
//   - Order status follows a strict workflow: Waiting -> Accepted -> Served -> Completed
//   - Every transition is one-directional and non-repeatable
//   - Line items are immutable after creation and their prices capture the
//     menu price at order time
//   - Dine-in line items allow negative quantities (kept to preserve the
//     historically tested contract)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
