package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/pkg/apperror"
)

func TestComputeTotalsDiscountBeforeTax(t *testing.T) {
	// 200.00 with 10% discount then 10% tax: 200 -> 180 -> 198
	totals := ComputeTotals(20000, 10, 10)
	assert.EqualValues(t, 20000, totals.SubTotal)
	assert.EqualValues(t, 2000, totals.Discount)
	assert.EqualValues(t, 1800, totals.Tax)
	assert.EqualValues(t, 19800, totals.Total)
}

func TestComputeTotalsNoDiscountNoTax(t *testing.T) {
	totals := ComputeTotals(12345, 0, 0)
	assert.EqualValues(t, 12345, totals.Total)
	assert.Zero(t, totals.Discount)
	assert.Zero(t, totals.Tax)
}

func TestComputeTotalsRoundsHalfUp(t *testing.T) {
	// 10.01 at 5% discount is 0.5005, rounds to 0.50
	totals := ComputeTotals(1001, 5, 0)
	assert.EqualValues(t, 50, totals.Discount)
	assert.EqualValues(t, 951, totals.Total)
}

func TestAddItemStartsAtOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "Rice 1kg", 100, 5, 1)

	cart := env.cart.CreateCart(ctx)
	cart, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 5, cart.Lines[0].StockSnapshot)
}

func TestAddItemCapsAtStockSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "Rice 1kg", 100, 2, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	// Third add exceeds the snapshot of 2
	_, err = env.cart.AddItem(ctx, cart.ID, product.ID)
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)

	cart, err = env.cart.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddItemOutOfStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "Rice 1kg", 100, 0, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	assert.ErrorIs(t, err, apperror.ErrOutOfStock)

	cart, err = env.cart.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityRemovesBelowOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "Rice 1kg", 100, 5, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	cart, err = env.cart.SetQuantity(ctx, cart.ID, product.ID, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityClampsToSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.seedProduct(t, "Rice 1kg", 100, 3, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	cart, err = env.cart.SetQuantity(ctx, cart.ID, product.ID, 10)
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)
	require.NotNil(t, cart)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCartSubTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.seedProduct(t, "Rice 1kg", 150, 10, 1)
	sugar := env.seedProduct(t, "Sugar 1kg", 90.50, 10, 1)

	cart := env.cart.CreateCart(ctx)
	_, err := env.cart.AddItem(ctx, cart.ID, rice.ID)
	require.NoError(t, err)
	_, err = env.cart.SetQuantity(ctx, cart.ID, rice.ID, 2)
	require.NoError(t, err)
	_, err = env.cart.AddItem(ctx, cart.ID, sugar.ID)
	require.NoError(t, err)

	cart, err = env.cart.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2*15000+9050, cart.SubTotal())
}

func TestGetCartUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.GetCart(context.Background(), "no-such-cart")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
