package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/pkg/apperror"
)

func TestCheckoutWorkedExample(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.enableTax(t, 10)

	product := env.seedProduct(t, "Maize Flour 2kg", 100, 10, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	_, err = env.cart.SetQuantity(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)

	// 200.00 gross, 10% discount, 10% tax: total 198.00, change 2.00
	sale, err := env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:          cart.ID,
		PaymentMethod:   enum.PaymentMethodCash,
		DiscountPercent: 10,
		AmountReceived:  200,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 20000, sale.SubTotal)
	assert.EqualValues(t, 2000, sale.Discount)
	assert.EqualValues(t, 1800, sale.Tax)
	assert.EqualValues(t, 19800, sale.Total)
	assert.EqualValues(t, 200, sale.Change)
	assert.True(t, strings.HasPrefix(sale.InvoiceNo, "INV-"))

	// Stock decremented and cart gone
	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity)

	_, err = env.cart.GetCart(ctx, cart.ID)
	assert.Error(t, err)
}

func TestCheckoutRefusesInsufficientPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 10, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 99.99,
	})
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)

	// Nothing was written: cart intact, stock untouched, no sale
	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	cart, err = env.cart.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	var saleCount int64
	require.NoError(t, env.db.Model(&entity.Sale{}).Count(&saleCount).Error)
	assert.Zero(t, saleCount)
}

func TestCheckoutRefusesEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cart := env.cart.CreateCart(ctx)
	_, err := env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 100,
	})
	assert.ErrorIs(t, err, apperror.ErrCartEmpty)
}

func TestCheckoutRollsBackWhenStockRanOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 2, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	_, err = env.cart.SetQuantity(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)

	// Another terminal sells the stock out from under the cart
	require.NoError(t, env.db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Update("quantity", 1).Error)

	_, err = env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 500,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// No sale committed, stock untouched, cart kept for correction
	var saleCount int64
	require.NoError(t, env.db.Model(&entity.Sale{}).Count(&saleCount).Error)
	assert.Zero(t, saleCount)

	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)

	_, err = env.cart.GetCart(ctx, cart.ID)
	assert.NoError(t, err)
}

func TestCheckoutEmitsLowStockNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 3, 2)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	_, err = env.cart.SetQuantity(ctx, cart.ID, product.ID, 2)
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 200,
	})
	require.NoError(t, err)

	// Remaining 1 <= alert 2
	count, err := env.notifier.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCheckoutExactlyOneSalePerCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 1, 0)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	input := &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 100,
	}
	_, err = env.checkout.Checkout(ctx, input)
	require.NoError(t, err)

	// The cart is gone after commit, so a replayed checkout cannot
	// commit a second sale
	_, err = env.checkout.Checkout(ctx, input)
	assert.Error(t, err)

	var saleCount int64
	require.NoError(t, env.db.Model(&entity.Sale{}).Count(&saleCount).Error)
	assert.EqualValues(t, 1, saleCount)
}

func TestCheckoutConcurrentDuplicatesCommitOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 10, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	input := &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 100,
	}

	// A double-clicked pay button fires two checkouts for the same cart
	start := make(chan struct{})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			_, err := env.checkout.Checkout(ctx, input)
			errs <- err
		}()
	}
	close(start)

	var failures int
	for i := 0; i < 2; i++ {
		if <-errs != nil {
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	var saleCount int64
	require.NoError(t, env.db.Model(&entity.Sale{}).Count(&saleCount).Error)
	assert.EqualValues(t, 1, saleCount)

	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Quantity)
}

func TestCheckoutClearsCommittedCartLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Rice 1kg", 100, 10, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx, &CheckoutInput{
		CartID:         cart.ID,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 100,
	})
	require.NoError(t, err)

	// A caller still holding the committed cart sees it emptied, so a
	// stale reference cannot drive a second commit
	assert.True(t, cart.IsEmpty())
}
