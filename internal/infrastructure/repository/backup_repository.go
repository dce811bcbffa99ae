package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fwahome/dukapos/internal/domain/entity"
	domainRepo "github.com/fwahome/dukapos/internal/domain/repository"
)

type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) domainRepo.BackupRepository {
	return &backupRepository{db: db}
}

func (r *backupRepository) Export(ctx context.Context) (*domainRepo.BackupData, error) {
	data := &domainRepo.BackupData{
		Products:  []entity.Product{},
		Suppliers: []entity.Supplier{},
		Sales:     []entity.Sale{},
		Settings:  []entity.Setting{},
	}

	db := r.db.WithContext(ctx)

	if err := db.Order("id ASC").Find(&data.Products).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&data.Suppliers).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Items").Order("id ASC").Find(&data.Sales).Error; err != nil {
		return nil, err
	}
	if err := db.Order("key ASC").Find(&data.Settings).Error; err != nil {
		return nil, err
	}

	return data, nil
}

// Restore clears the backed-up tables and reinserts the payload. The whole
// operation runs in one transaction so a failure midway changes nothing.
func (r *backupRepository) Restore(ctx context.Context, data *domainRepo.BackupData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entity.SaleItem{},
			&entity.Sale{},
			&entity.Product{},
			&entity.Supplier{},
			&entity.Setting{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(data.Suppliers) > 0 {
			if err := tx.Create(&data.Suppliers).Error; err != nil {
				return err
			}
		}
		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return err
			}
		}
		if len(data.Sales) > 0 {
			if err := tx.Create(&data.Sales).Error; err != nil {
				return err
			}
		}
		if len(data.Settings) > 0 {
			if err := tx.Create(&data.Settings).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
