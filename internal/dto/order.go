package dto

import "time"

// OrderLineResponse is a single line of an order.
type OrderLineResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	ID         int64               `json:"id"`
	CustomerID string              `json:"customer_id"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	Lines      []OrderLineResponse `json:"lines"`
}
