package queries

import (
	"context"

	"dinein/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTablesQueryHandler retrieves all table information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllTablesQueryHandler(db)
//	query := NewGetAllTablesQuery()
//
//	tables, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get tables: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d tables\n", len(tables))
type GetAllTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTablesQueryHandler creates a handler for table retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllTablesQueryHandler(db *gorm.DB) GetAllTablesQueryHandler {
	return GetAllTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables.
// Returns a slice of table read models sorted by name.
func (h GetAllTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllTablesQuery,
) ([]GetAllTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			occupied,
			number_of_guests
		FROM tables
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tbl GetAllTablesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&tbl.Name,
			&tbl.Occupied,
			&tbl.NumberOfGuests,
		)
		if err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tbl.ID = tableID
		tables = append(tables, tbl)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
