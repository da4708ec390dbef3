package menurepo

import (
	"context"
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuClient implements the MenuClient port against the menus table.
type GormMenuClient struct {
	db *gorm.DB
}

// NewGormMenuClient creates a new GORM-backed menu client.
func NewGormMenuClient(db *gorm.DB) *GormMenuClient {
	return &GormMenuClient{db: db}
}

// Get fetches the current snapshot of the menu with the given identifier.
// Returns an ObjectNotFoundError when the menu does not exist.
func (c *GormMenuClient) Get(ctx context.Context, menuID kernel.UUID) (menu.Snapshot, error) {
	if err := menuID.Validate(); err != nil {
		return menu.Snapshot{}, err
	}

	var dto MenuDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", menuID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Snapshot{}, errs.NewObjectNotFoundError("menu", menuID.String())
		}
		return menu.Snapshot{}, err
	}

	return toDomain(dto)
}
