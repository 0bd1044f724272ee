package dto

// CustomerResponse represents a customer as exposed via transport layers.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
