package commands

import (
	"context"
	"time"

	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/ports"
	"dinein/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Every requested line is checked against a point-in-time menu snapshot, and
// the table must be occupied before the order is persisted in "waiting" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuClient)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), tableID, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now waiting for staff acceptance
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	menuClient ports.MenuClient
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a MenuClient for
// snapshot validation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, menuClient ports.MenuClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menuClient: menuClient,
	}
}

// Handle processes the order creation command.
// For each line the referenced menu must exist, be displayed, and match the
// requested price. The table must exist and be occupied. On success the order
// is persisted in "waiting" status with the creation timestamp.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lineItems, err := h.buildLineItems(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The row lock serializes creation against a concurrent table clear, so
	// the occupancy read cannot go stale before the order commits.
	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.GetForUpdate(ctx, cmd.TableID())
	if err != nil {
		return err
	}
	if !tbl.Occupied() {
		return errs.NewInvalidStateError("order cannot be created for a vacant table")
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), tbl.ID(), lineItems, time.Now())
	if err != nil {
		return err
	}

	ordersRepo := uow.OrderRepository()
	if err = ordersRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildLineItems resolves each requested line against the menu catalog.
// A hidden menu or a price that drifted since the guest saw it rejects
// the whole order.
func (h *CreateOrderCommandHandler) buildLineItems(ctx context.Context, lines []OrderLine) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		snapshot, err := h.menuClient.Get(ctx, line.MenuID)
		if err != nil {
			return nil, err
		}

		if err = snapshot.EnsureDisplayed(); err != nil {
			return nil, err
		}
		if err = snapshot.EnsurePrice(line.Price); err != nil {
			return nil, err
		}

		lineItem, err := order.NewLineItem(line.MenuID, line.Quantity, snapshot.Price())
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}
