package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their line items and lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByTableID retrieves every order seated at the given table,
	// regardless of status. The table release policy evaluates this full
	// sibling set on each completion.
	GetAllByTableID(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves all orders. No ordering is contractual; callers must
	// not rely on storage order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
