// Package ports defines repository and collaborator interfaces for the dine-in
// ordering core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
// Provides methods for storing, retrieving, and querying seating units
// with their occupancy state.
type TableRepository interface {
	// Add persists a new table aggregate to storage.
	// The table must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table aggregate.
	// The table must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetForUpdate retrieves a table aggregate and takes a row-level lock on
	// it for the remainder of the current transaction. The completion
	// workflow locks the table before scanning sibling orders so two racing
	// completions serialize instead of both missing the release condition.
	// Outside a transaction this behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// GetAll retrieves all tables.
	GetAll(ctx context.Context) ([]*table.Table, error)
}
