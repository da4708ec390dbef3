package http

import "time"

// CreateTableRequest is the payload for registering a new table.
type CreateTableRequest struct {
	Name string `json:"name"`
}

// GuestsRequest carries a party size for occupancy endpoints.
type GuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

// CreateOrderRequest is the payload for opening a new order.
type CreateOrderRequest struct {
	TableID   string                   `json:"tableId"`
	LineItems []CreateOrderLineRequest `json:"lineItems"`
}

// CreateOrderLineRequest is one requested menu position.
// Price is the price the guest saw; it must match the live menu price.
type CreateOrderLineRequest struct {
	MenuID   string `json:"menuId"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// TableResponse is the read model for one table.
type TableResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Occupied       bool   `json:"occupied"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

// OrderResponse is the read model for one order.
type OrderResponse struct {
	ID            string                  `json:"id"`
	TableID       string                  `json:"tableId"`
	Status        string                  `json:"status"`
	OrderDateTime time.Time               `json:"orderDateTime"`
	LineItems     []OrderLineItemResponse `json:"lineItems"`
}

// OrderLineItemResponse is one menu position within an order read model.
type OrderLineItemResponse struct {
	MenuID   string `json:"menuId"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
