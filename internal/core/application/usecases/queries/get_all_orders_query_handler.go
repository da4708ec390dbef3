package queries

import (
	"context"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders with their line items from
// the database. Uses a direct SQL join for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Joins order rows with their line items and groups them into read models.
// Line items within each order follow their insertion order; the sequence of
// the orders themselves is not guaranteed.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.table_id,
			o.status,
			o.order_date_time,
			li.menu_id,
			li.quantity,
			li.price
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		ORDER BY li.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	// group line item rows under their order, preserving first-seen order
	indexByID := make(map[uuid.UUID]int)

	for rows.Next() {
		var id, tableID uuid.UUID
		var status int
		var orderDateTime time.Time
		var menuID *uuid.UUID
		var quantity *int64
		var price *decimal.Decimal

		err = rows.Scan(
			&id,
			&tableID,
			&status,
			&orderDateTime,
			&menuID,
			&quantity,
			&price,
		)
		if err != nil {
			return nil, err
		}

		idx, seen := indexByID[id]
		if !seen {
			orderID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}
			orderTableID, idErr := kernel.UUIDFromBytes(tableID[:])
			if idErr != nil {
				return nil, idErr
			}

			orders = append(orders, GetAllOrdersQueryResponse{
				ID:            orderID,
				TableID:       orderTableID,
				Status:        order.Status(status).String(),
				OrderDateTime: orderDateTime,
				LineItems:     make([]OrderLineItemResponse, 0),
			})
			idx = len(orders) - 1
			indexByID[id] = idx
		}

		if menuID == nil {
			continue
		}

		lineMenuID, idErr := kernel.UUIDFromBytes((*menuID)[:])
		if idErr != nil {
			return nil, idErr
		}

		orders[idx].LineItems = append(orders[idx].LineItems, OrderLineItemResponse{
			MenuID:   lineMenuID,
			Quantity: *quantity,
			Price:    *price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
