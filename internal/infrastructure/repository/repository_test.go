package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fwahome/dukapos/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, code, name string, priceCents int64, quantity int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Code:         code,
		Name:         name,
		SellingPrice: priceCents,
		Quantity:     quantity,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
