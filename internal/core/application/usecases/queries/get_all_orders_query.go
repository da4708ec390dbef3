// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order in the system with its line items.
// No result ordering is contractual.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s at table %s is %s\n", o.ID, o.TableID, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order read model with its lines.
type GetAllOrdersQueryResponse struct {
	ID            kernel.UUID
	TableID       kernel.UUID
	Status        string
	OrderDateTime time.Time
	LineItems     []OrderLineItemResponse
}

// OrderLineItemResponse represents one menu position within an order read model.
// Price is the snapshot captured at order creation, not the live menu price.
type OrderLineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
}
