package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fwahome/dukapos/internal/domain/entity"
	infraRepo "github.com/fwahome/dukapos/internal/infrastructure/repository"
)

// testEnv wires real services over an in-memory store
type testEnv struct {
	db       *gorm.DB
	products *ProductService
	supplier *SupplierService
	cart     *CartService
	checkout *CheckoutService
	sales    *SaleService
	settings *SettingsService
	notifier *NotificationService
	backup   *BackupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Supplier{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Setting{},
		&entity.Notification{},
		&entity.IdempotencyKey{},
	))

	productRepo := infraRepo.NewProductRepository(db)
	supplierRepo := infraRepo.NewSupplierRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	notificationRepo := infraRepo.NewNotificationRepository(db)

	settings := NewSettingsService(settingsRepo)
	notifier := NewNotificationService(notificationRepo)
	cart := NewCartService(NewCartStore(), productRepo)

	return &testEnv{
		db:       db,
		products: NewProductService(productRepo, supplierRepo),
		supplier: NewSupplierService(supplierRepo, productRepo),
		cart:     cart,
		checkout: NewCheckoutService(cart, saleRepo, productRepo, settings, notifier),
		sales:    NewSaleService(saleRepo),
		settings: settings,
		notifier: notifier,
		backup:   NewBackupService(infraRepo.NewBackupRepository(db), notifier),
	}
}

func (env *testEnv) seedProduct(t *testing.T, name string, price float64, quantity, alert int) *entity.Product {
	t.Helper()

	product, err := env.products.CreateProduct(context.Background(), &CreateProductInput{
		Name:          name,
		Category:      "General",
		SellingPrice:  price,
		Quantity:      quantity,
		QuantityAlert: alert,
	})
	require.NoError(t, err)
	return product
}

func (env *testEnv) enableTax(t *testing.T, ratePercent float64) {
	t.Helper()

	payload, err := json.Marshal(entity.TaxConfig{Enabled: true, RatePercent: ratePercent})
	require.NoError(t, err)
	_, err = env.settings.UpdateSetting(context.Background(), entity.SettingKeyTaxRate, payload)
	require.NoError(t, err)
}
