package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
)

// CompletionNotifier receives the domain notification emitted when a table is
// auto-cleared by order completion. Delivery is fire-and-forget from the
// core's perspective: the notifier is invoked synchronously after the clear
// is durable, and a delivery failure is logged, never propagated back into
// the completed transaction.
type CompletionNotifier interface {
	// TableCleared notifies interested listeners (kitchen, reporting) that
	// completing the order with the given identifier released its table.
	TableCleared(ctx context.Context, orderID kernel.UUID) error
}
