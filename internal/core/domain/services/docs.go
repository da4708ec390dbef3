// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dine-in ordering system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TableReleasePolicy: Decides whether a table can be released based on the
//     completion state of every order seated at it
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
