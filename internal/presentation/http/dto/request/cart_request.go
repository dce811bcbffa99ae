package request

// AddCartItemRequest represents the add cart item request body
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest represents the set quantity request body
type SetCartQuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CheckoutRequest represents the checkout request body. Amounts are
// decimals as entered at the till.
type CheckoutRequest struct {
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	DiscountPercent float64 `json:"discount_percent"`
	AmountReceived  float64 `json:"amount_received" binding:"required"`
}
