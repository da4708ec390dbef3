// Package tablerepo provides data transfer objects and mapping functions for table persistence.
// This package implements the repository pattern for the table domain aggregate, handling
// the conversion between domain entities and database representations.
package tablerepo

import (
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting table aggregates.
type TableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Occupied       bool
	NumberOfGuests int
}

// TableName specifies the database table name for table entities.
// Overrides GORM's default naming convention to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(tbl *table.Table) TableDTO {
	return TableDTO{
		ID:             tbl.ID().Bytes(),
		Name:           tbl.Name(),
		Occupied:       tbl.Occupied(),
		NumberOfGuests: tbl.NumberOfGuests(),
	}
}

// toDomain converts a database DTO to a table domain aggregate.
// Reconstructs the complete aggregate using RestoreTable.
func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Name, dto.Occupied, dto.NumberOfGuests)
}
