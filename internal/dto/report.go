package dto

// CustomerSalesResponse is one row of the sales-by-customer report.
type CustomerSalesResponse struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	OrderCount   int     `json:"order_count"`
	TotalSpent   float64 `json:"total_spent"`
}
