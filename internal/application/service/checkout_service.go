package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
	"github.com/fwahome/dukapos/pkg/invoice"
)

// CheckoutService turns an open cart into a committed sale
type CheckoutService struct {
	cartService     *CartService
	saleRepo        repository.SaleRepository
	productRepo     repository.ProductRepository
	settingsService *SettingsService
	notifier        *NotificationService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartService *CartService,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	settingsService *SettingsService,
	notifier *NotificationService,
) *CheckoutService {
	return &CheckoutService{
		cartService:     cartService,
		saleRepo:        saleRepo,
		productRepo:     productRepo,
		settingsService: settingsService,
		notifier:        notifier,
	}
}

// CheckoutInput represents the checkout input. Amounts are decimals as
// entered by the cashier; the service works in cents internally.
type CheckoutInput struct {
	CartID          string
	PaymentMethod   enum.PaymentMethod
	DiscountPercent float64
	AmountReceived  float64
}

// Checkout validates payment, commits the sale and stock decrements in one
// transaction, and clears the cart only after the commit succeeds. Any
// insufficient stock discovered at commit time rolls everything back and
// leaves the cart intact for correction.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Sale, error) {
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "Payment method must be cash, card or mobile"},
		})
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount_percent", Message: "Discount must be between 0 and 100"},
		})
	}

	// The store lookup happens under the mutation lock so a concurrent
	// checkout of the same cart finds it gone rather than stale.
	s.cartService.mu.Lock()
	defer s.cartService.mu.Unlock()

	cart, err := s.cartService.GetCart(ctx, input.CartID)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, apperror.ErrCartEmpty
	}

	taxPercent := 0.0
	taxConfig, err := s.settingsService.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}
	if taxConfig.Enabled {
		taxPercent = taxConfig.RatePercent
	}

	totals := ComputeTotals(cart.SubTotal(), input.DiscountPercent, taxPercent)

	amountReceived := int64(input.AmountReceived*100 + 0.5)
	if amountReceived < totals.Total {
		return nil, apperror.ErrInsufficientPayment
	}

	now := time.Now()
	sale := buildSale(cart, totals, invoice.Generate(now), input.PaymentMethod, amountReceived, now)

	decrements := make(map[uint]int, len(cart.Lines))
	for _, line := range cart.Lines {
		decrements[line.ProductID] = line.Quantity
	}

	failedIDs, err := s.saleRepo.Commit(ctx, sale, decrements)
	if err != nil {
		log.Printf("Checkout commit failed for cart %s: %v", cart.ID, err)
		return nil, apperror.NewStorageFailure()
	}
	if len(failedIDs) > 0 {
		return nil, s.insufficientStockError(ctx, cart, failedIDs)
	}

	// Empty the committed cart before dropping it so a stale pointer held
	// elsewhere has nothing left to sell.
	cart.Lines = nil
	s.cartService.store.Remove(cart.ID)

	s.emitLowStockNotifications(ctx, decrements)

	return sale, nil
}

// insufficientStockError names the products whose stock ran out between
// cart building and commit.
func (s *CheckoutService) insufficientStockError(ctx context.Context, cart *Cart, failedIDs []uint) error {
	names := make([]string, 0, len(failedIDs))
	for _, id := range failedIDs {
		for _, line := range cart.Lines {
			if line.ProductID == id {
				names = append(names, line.Name)
				break
			}
		}
	}

	fieldErrors := make([]apperror.FieldError, 0, len(names))
	for _, name := range names {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: fmt.Sprintf("Insufficient stock for %s", name),
		})
	}

	appErr := *apperror.ErrInsufficientStock
	appErr.Errors = fieldErrors
	return &appErr
}

// emitLowStockNotifications records a notification for every product the
// sale pushed to or below its alert threshold. Failures here never undo
// the sale; the commit already happened.
func (s *CheckoutService) emitLowStockNotifications(ctx context.Context, decrements map[uint]int) {
	ids := make([]uint, 0, len(decrements))
	for id := range decrements {
		ids = append(ids, id)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return
	}

	for _, product := range products {
		if product.IsLowStock() {
			s.notifier.NotifyLowStock(ctx, &product)
		}
	}
}
