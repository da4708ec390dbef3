// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as child rows and loaded together with the order.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID       uuid.UUID `gorm:"type:uuid;index"`
	OrderDateTime time.Time
	Status        int
	LineItems     []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one menu position row belonging to an order.
// Price is the menu price snapshot captured at order creation.
type LineItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	MenuID   uuid.UUID `gorm:"type:uuid"`
	Quantity int64
	Price    decimal.Decimal `gorm:"type:numeric(19,2)"`
}

// TableName specifies the database table name for line item rows.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	lineItems := o.LineItems()
	lineItemDTOs := make([]LineItemDTO, 0, len(lineItems))
	for _, lineItem := range lineItems {
		lineItemDTOs = append(lineItemDTOs, LineItemDTO{
			OrderID:  o.ID().Bytes(),
			MenuID:   lineItem.MenuID().Bytes(),
			Quantity: lineItem.Quantity(),
			Price:    lineItem.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		TableID:       o.TableID().Bytes(),
		OrderDateTime: o.OrderDateTime(),
		Status:        int(o.Status()),
		LineItems:     lineItemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, lineItemDTO := range dto.LineItems {
		menuID, idErr := kernel.UUIDFromBytes(lineItemDTO.MenuID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewPrice(lineItemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		lineItem, liErr := order.NewLineItem(menuID, lineItemDTO.Quantity, price)
		if liErr != nil {
			return nil, liErr
		}

		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(id, tableID, lineItems, dto.OrderDateTime, order.Status(dto.Status))
}
