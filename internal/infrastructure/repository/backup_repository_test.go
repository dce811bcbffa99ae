package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
)

func TestBackupRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBackupRepository(db)
	ctx := context.Background()

	supplier := &entity.Supplier{Code: "SUP-1", Name: "Mombasa Traders"}
	require.NoError(t, db.Create(supplier).Error)

	product := seedProduct(t, db, "PRD-1", "Rice 1kg", 10000, 4)
	product.SupplierID = &supplier.ID
	require.NoError(t, db.Save(product).Error)

	sale := &entity.Sale{
		InvoiceNo:      "INV-BACKUP",
		SaleDate:       time.Now(),
		SubTotal:       10000,
		Total:          10000,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: 10000,
		Items: []entity.SaleItem{
			{ProductID: product.ID, Code: product.Code, Name: product.Name, UnitPrice: 10000, Quantity: 1, Total: 10000},
		},
	}
	require.NoError(t, db.Create(sale).Error)

	setting := &entity.Setting{Key: entity.SettingKeyStore, Value: `{"name":"Duka Moja"}`}
	require.NoError(t, db.Create(setting).Error)

	// Notifications must stay out of the export
	require.NoError(t, db.Create(&entity.Notification{
		Message: "test", Type: enum.NotificationTypeInfo, Date: time.Now(),
	}).Error)

	data, err := repo.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Products, 1)
	assert.Len(t, data.Suppliers, 1)
	assert.Len(t, data.Sales, 1)
	assert.Len(t, data.Settings, 1)
	require.Len(t, data.Sales[0].Items, 1)

	// Wipe and restore into a changed store
	require.NoError(t, db.Create(&entity.Product{Code: "PRD-X", Name: "Stray"}).Error)
	require.NoError(t, repo.Restore(ctx, data))

	var products []entity.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, "PRD-1", products[0].Code)
	assert.Equal(t, 4, products[0].Quantity)

	var sales []entity.Sale
	require.NoError(t, db.Preload("Items").Find(&sales).Error)
	require.Len(t, sales, 1)
	assert.Equal(t, "INV-BACKUP", sales[0].InvoiceNo)
	assert.Len(t, sales[0].Items, 1)

	// Notifications survived untouched
	var notifCount int64
	require.NoError(t, db.Model(&entity.Notification{}).Count(&notifCount).Error)
	assert.EqualValues(t, 1, notifCount)
}
