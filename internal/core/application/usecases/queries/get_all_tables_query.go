package queries

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var (
	ErrGetAllTablesQueryIsNotConstructed = errors.New(
		"GetAllTablesQuery must be created via NewGetAllTablesQuery constructor",
	)
)

// GetAllTablesQuery retrieves every seating unit with its occupancy state.
// Used by the floor view to show which tables are free.
//
// Example:
//
//	query := NewGetAllTablesQuery()
//	handler := NewGetAllTablesQueryHandler(db)
//
//	tables, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve tables: %w", err)
//	}
//
//	for _, tbl := range tables {
//	    fmt.Printf("Table %s occupied=%t guests=%d\n", tbl.Name, tbl.Occupied, tbl.NumberOfGuests)
//	}
type GetAllTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTablesQuery creates a query to retrieve all tables.
// This is a parameterless query that fetches the complete table list.
func NewGetAllTablesQuery() GetAllTablesQuery {
	return GetAllTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTablesQueryIsNotConstructed if validation fails.
func (q GetAllTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTablesQueryIsNotConstructed)
}

// GetAllTablesQueryResponse represents one table read model.
type GetAllTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Occupied       bool
	NumberOfGuests int
}
