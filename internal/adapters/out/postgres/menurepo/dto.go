// Package menurepo provides read access to the menu catalog for order validation.
// The catalog itself is owned by a separate menu service; this package only maps
// its rows into point-in-time snapshots.
package menurepo

import (
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO represents one menu catalog row.
type MenuDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Displayed bool
	Price     decimal.Decimal `gorm:"type:numeric(19,2)"`
}

// TableName specifies the database table name for menu rows.
func (MenuDTO) TableName() string {
	return "menus"
}

// toDomain converts a catalog row into a point-in-time snapshot.
func toDomain(dto MenuDTO) (menu.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Snapshot{}, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return menu.Snapshot{}, err
	}

	return menu.NewSnapshot(id, dto.Name, dto.Displayed, price)
}
