package http

import (
	"errors"
	"net/http"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/application/usecases/queries"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the dine-in ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTableHandler    commands.CreateTableCommandHandler
	occupyTableHandler    commands.OccupyTableCommandHandler
	changeGuestsHandler   commands.ChangeNumberOfGuestsCommandHandler
	clearTableHandler     commands.ClearTableCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	serveOrderHandler     commands.ServeOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getAllTablesHandler queries.GetAllTablesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTableHandler commands.CreateTableCommandHandler,
	occupyTableHandler commands.OccupyTableCommandHandler,
	changeGuestsHandler commands.ChangeNumberOfGuestsCommandHandler,
	clearTableHandler commands.ClearTableCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllTablesHandler queries.GetAllTablesQueryHandler,
) *Server {
	return &Server{
		createTableHandler:   createTableHandler,
		occupyTableHandler:   occupyTableHandler,
		changeGuestsHandler:  changeGuestsHandler,
		clearTableHandler:    clearTableHandler,
		createOrderHandler:   createOrderHandler,
		acceptOrderHandler:   acceptOrderHandler,
		serveOrderHandler:    serveOrderHandler,
		completeOrderHandler: completeOrderHandler,
		getAllOrdersHandler:  getAllOrdersHandler,
		getAllTablesHandler:  getAllTablesHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/tables", s.CreateTable)
	api.GET("/tables", s.GetTables)
	api.PUT("/tables/:tableId/occupy", s.OccupyTable)
	api.PUT("/tables/:tableId/number-of-guests", s.ChangeNumberOfGuests)
	api.PUT("/tables/:tableId/clear", s.ClearTable)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:orderId/accept", s.AcceptOrder)
	api.PUT("/orders/:orderId/serve", s.ServeOrder)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)
}

// CreateTable handles POST /api/v1/tables - registers a new table.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req CreateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateTableCommand(tableID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid table data: "+err.Error())
	}

	if err := s.createTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: tableID.String()})
}

// OccupyTable handles PUT /api/v1/tables/:tableId/occupy - seats a party.
func (s *Server) OccupyTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	var req GuestsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOccupyTableCommand(tableID, req.NumberOfGuests)
	if err != nil {
		return badRequest(ctx, "Invalid occupancy data: "+err.Error())
	}

	if err = s.occupyTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeNumberOfGuests handles PUT /api/v1/tables/:tableId/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	var req GuestsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, req.NumberOfGuests)
	if err != nil {
		return badRequest(ctx, "Invalid guest count data: "+err.Error())
	}

	if err = s.changeGuestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClearTable handles PUT /api/v1/tables/:tableId/clear - manually vacates a table.
func (s *Server) ClearTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	cmd, err := commands.NewClearTableCommand(tableID)
	if err != nil {
		return badRequest(ctx, "Invalid table data: "+err.Error())
	}

	if err = s.clearTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetTables handles GET /api/v1/tables - retrieves all tables.
func (s *Server) GetTables(ctx echo.Context) error {
	query := queries.NewGetAllTablesQuery()

	tables, err := s.getAllTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve tables")
	}

	response := make([]TableResponse, len(tables))
	for i, tbl := range tables {
		response[i] = TableResponse{
			ID:             tbl.ID.String(),
			Name:           tbl.Name,
			Occupied:       tbl.Occupied,
			NumberOfGuests: tbl.NumberOfGuests,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a new dine-in order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	lines := make([]commands.OrderLine, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		menuID, idErr := kernel.UUIDFromString(item.MenuID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu ID")
		}

		price, priceErr := kernel.PriceFromString(item.Price)
		if priceErr != nil {
			return badRequest(ctx, "Invalid price")
		}

		lines = append(lines, commands.OrderLine{
			MenuID:   menuID,
			Quantity: item.Quantity,
			Price:    price,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, tableID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// AcceptOrder handles PUT /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ServeOrder handles PUT /api/v1/orders/:orderId/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles PUT /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		lineItems := make([]OrderLineItemResponse, len(o.LineItems))
		for j, item := range o.LineItems {
			lineItems[j] = OrderLineItemResponse{
				MenuID:   item.MenuID.String(),
				Quantity: item.Quantity,
				Price:    item.Price.String(),
			}
		}

		response[i] = OrderResponse{
			ID:            o.ID.String(),
			TableID:       o.TableID.String(),
			Status:        o.Status,
			OrderDateTime: o.OrderDateTime,
			LineItems:     lineItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps domain error kinds onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
