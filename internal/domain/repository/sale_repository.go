package repository

import (
	"context"
	"time"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/pkg/pagination"
)

// TopProductResult is one row of the popularity ranking: total quantity
// sold joined against the current product record.
type TopProductResult struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductCode  string  `json:"product_code"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
}

// SaleRepository defines the interface for sale data operations.
// Sales are immutable: there are no update or delete operations.
type SaleRepository interface {
	// Commit atomically writes the sale with its line snapshots and applies
	// a guarded stock decrement for every line, all in one storage
	// transaction. When any product has insufficient stock the whole
	// transaction rolls back and the IDs of the failing products are
	// returned with a nil error.
	Commit(ctx context.Context, sale *entity.Sale, decrements map[uint]int) (failedIDs []uint, err error)
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// FindByDateRange returns all sales with SaleDate in [from, to], items
	// preloaded, ordered oldest first. Used by the reporting aggregator.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	// TopProducts ranks products by total quantity sold across all sales,
	// resolving each to its current catalog record.
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	Count(ctx context.Context) (int64, error)
}
