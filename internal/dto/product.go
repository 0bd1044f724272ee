package dto

// ProductResponse represents a menu product as exposed via transport layers.
type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
