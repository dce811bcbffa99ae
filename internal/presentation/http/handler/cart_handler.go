package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fwahome/dukapos/internal/application/service"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/presentation/http/dto/request"
	"github.com/fwahome/dukapos/internal/presentation/http/dto/response"
	"github.com/fwahome/dukapos/pkg/apperror"
)

// CartHandler handles cart and checkout HTTP requests
type CartHandler struct {
	cartService     *service.CartService
	checkoutService *service.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, checkoutService *service.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// cartPayload renders a cart with decimal prices and line totals
func cartPayload(cart *service.Cart) gin.H {
	lines := make([]gin.H, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, gin.H{
			"product_id": line.ProductID,
			"code":       line.Code,
			"name":       line.Name,
			"unit_price": float64(line.UnitPrice) / 100,
			"quantity":   line.Quantity,
			"line_total": float64(line.UnitPrice*int64(line.Quantity)) / 100,
		})
	}

	return gin.H{
		"id":         cart.ID,
		"created_at": cart.CreatedAt,
		"lines":      lines,
		"sub_total":  float64(cart.SubTotal()) / 100,
	}
}

// Create handles opening a new cart
func (h *CartHandler) Create(c *gin.Context) {
	cart := h.cartService.CreateCart(c.Request.Context())
	response.Created(c, "Cart created successfully", cartPayload(cart))
}

// Get handles retrieving an open cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cartPayload(cart))
}

// Clear handles emptying a cart
func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.cartService.ClearCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared successfully", cartPayload(cart))
}

// AddItem handles adding one unit of a product to a cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID is required")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), c.Param("id"), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cartPayload(cart))
}

// SetQuantity handles setting a cart line to an exact quantity. A clamped
// quantity comes back as a conflict with the clamped cart attached.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req request.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID is required")
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), c.Param("id"), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, apperror.ErrInsufficientStock) && cart != nil {
			appErr := apperror.GetAppError(err)
			c.JSON(appErr.Code, response.APIResponse{
				Success: false,
				Message: appErr.Message,
				Data:    cartPayload(cart),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", cartPayload(cart))
}

// RemoveItem handles removing a line from a cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := ParseIDParam(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), c.Param("id"), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", cartPayload(cart))
}

// Checkout handles committing a cart into a sale
func (h *CartHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment method and amount received are required")
		return
	}

	sale, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CartID:          c.Param("id"),
		PaymentMethod:   enum.PaymentMethod(req.PaymentMethod),
		DiscountPercent: req.DiscountPercent,
		AmountReceived:  req.AmountReceived,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}
