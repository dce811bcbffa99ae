package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fwahome/dukapos/internal/domain/entity"
	domainRepo "github.com/fwahome/dukapos/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// errInsufficientStock signals a rollback from inside the commit
// transaction; it never escapes Commit.
var errInsufficientStock = errors.New("insufficient stock")

// Commit writes the sale and decrements stock for every line in one
// transaction. Each decrement is guarded (quantity >= amount), so two
// interleaved checkouts can never drive stock negative; any failed guard
// rolls the whole commit back, sale record included.
func (r *saleRepository) Commit(ctx context.Context, sale *entity.Sale, decrements map[uint]int) ([]uint, error) {
	var failedIDs []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, amount := range decrements {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND quantity >= ?", id, amount).
				Update("quantity", gorm.Expr("quantity - ?", amount))

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return errInsufficientStock
		}

		// Items are created through the association in the same transaction
		return tx.Create(sale).Error
	})

	if errors.Is(err, errInsufficientStock) {
		return failedIDs, nil
	}

	return nil, err
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.From != nil {
		query = query.Where("sale_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("sale_date <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("sale_date DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date <= ?", from, to).
		Preload("Items").
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

// TopProducts ranks products by units sold across all sales, joined to the
// current catalog record so the ranking shows current names and codes.
func (r *saleRepository) TopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			p.code AS product_code,
			COALESCE(SUM(si.quantity), 0) AS quantity_sold,
			COALESCE(SUM(si.total), 0) / 100.0 AS revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name, p.code
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).Count(&total).Error
	return total, err
}
