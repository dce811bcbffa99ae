package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
	"github.com/fwahome/dukapos/pkg/pagination"
)

func TestCreateProductGeneratesCode(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "Rice 1kg",
		Category:     "Grains",
		SellingPrice: 150,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.Code)
	assert.EqualValues(t, 15000, product.SellingPrice)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "",
		SellingPrice: -5,
		Quantity:     -1,
	})
	require.Error(t, err)

	// name, category, selling_price, quantity
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 4)
}

func TestCreateProductRequiresCategory(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "Rice 1kg",
		SellingPrice: 150,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "category", appErr.Errors[0].Field)
}

func TestCreateProductDuplicateCodeLeavesCountUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.products.CreateProduct(ctx, &CreateProductInput{Code: "PRD-RICE", Name: "Rice 1kg", Category: "Grains"})
	require.NoError(t, err)

	_, err = env.products.CreateProduct(ctx, &CreateProductInput{Code: "PRD-RICE", Name: "Rice 2kg", Category: "Grains"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	var count int64
	require.NoError(t, env.db.Model(&entity.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProductUnknownID(t *testing.T) {
	env := newTestEnv(t)

	name := "Anything"
	_, err := env.products.UpdateProduct(context.Background(), &UpdateProductInput{ID: 999, Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListProductsLowStockFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "Plenty", 100, 50, 5)
	low := env.seedProduct(t, "Scarce", 100, 2, 5)

	result, err := env.products.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		LowStock:   true,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, low.ID, result.Items[0].ID)
}

func TestDeleteSupplierBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	supplier, err := env.supplier.CreateSupplier(ctx, &CreateSupplierInput{Name: "Mombasa Traders"})
	require.NoError(t, err)

	_, err = env.products.CreateProduct(ctx, &CreateProductInput{
		Name:       "Rice 1kg",
		Category:   "Grains",
		SupplierID: &supplier.ID,
	})
	require.NoError(t, err)

	err = env.supplier.DeleteSupplier(ctx, supplier.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Still there
	got, err := env.supplier.GetSupplier(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mombasa Traders", got.Name)
}

func TestDeleteSupplierSucceedsWhenUnreferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	supplier, err := env.supplier.CreateSupplier(ctx, &CreateSupplierInput{Name: "Nakuru Wholesale"})
	require.NoError(t, err)

	require.NoError(t, env.supplier.DeleteSupplier(ctx, supplier.ID))

	_, err = env.supplier.GetSupplier(ctx, supplier.ID)
	assert.Error(t, err)
}
