package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fwahome/dukapos/internal/config"
	"github.com/fwahome/dukapos/internal/domain/entity"
)

// NewSQLiteDB opens the embedded SQLite database file. The shop's whole
// data set lives in this one local file.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent handlers.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Supplier{},
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Setting{},
		&entity.Notification{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData seeds the fixed settings records and the admin user on
// first run. Existing records are never overwritten.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	defaults := map[string]interface{}{
		entity.SettingKeyStore: entity.StoreProfile{
			Name:    "My Shop",
			Address: "",
			Phone:   "",
			Email:   "",
		},
		entity.SettingKeyReceipt: entity.ReceiptTemplate{
			Header:     "Thank you for shopping with us",
			Footer:     "Goods once sold are not returnable",
			ShowLogo:   false,
			PaperWidth: 58,
		},
		entity.SettingKeyTaxRate: entity.TaxConfig{
			Enabled:     false,
			RatePercent: 16,
		},
		entity.SettingKeyCurrency: entity.CurrencyFormat{
			Code:          "KES",
			Symbol:        "KSh",
			ThousandsSep:  ",",
			DecimalPlaces: 2,
			SymbolFirst:   true,
		},
	}

	for key, payload := range defaults {
		var existing entity.Setting
		if err := db.Where("key = ?", key).First(&existing).Error; err == nil {
			continue
		}
		value, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode default setting %s: %w", key, err)
		}
		if err := db.Create(&entity.Setting{Key: key, Value: string(value)}).Error; err != nil {
			log.Printf("Warning: failed to seed setting %s: %v", key, err)
		}
	}

	// Create the admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminUsername != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("username = ?", adminUsername).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					Username:     adminUsername,
					PasswordHash: string(hashed),
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
