package request

// CreateSupplierRequest represents the create supplier request body
type CreateSupplierRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Contact string  `json:"contact"`
	Address string  `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// UpdateSupplierRequest represents the update supplier request body
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}
