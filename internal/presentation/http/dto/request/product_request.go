package request

// CreateProductRequest represents the create product request body
type CreateProductRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	SellingPrice  float64 `json:"selling_price"`
	CostPrice     float64 `json:"cost_price"`
	Quantity      int     `json:"quantity"`
	QuantityAlert int     `json:"quantity_alert"`
	SupplierID    *uint   `json:"supplier_id"`
}

// UpdateProductRequest represents the update product request body
type UpdateProductRequest struct {
	Code          *string  `json:"code"`
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	SellingPrice  *float64 `json:"selling_price"`
	CostPrice     *float64 `json:"cost_price"`
	Quantity      *int     `json:"quantity"`
	QuantityAlert *int     `json:"quantity_alert"`
	SupplierID    *uint    `json:"supplier_id"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	Category   string `form:"category"`
	SupplierID *uint  `form:"supplier_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
}
