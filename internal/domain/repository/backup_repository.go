package repository

import (
	"context"

	"github.com/fwahome/dukapos/internal/domain/entity"
)

// BackupData is the on-disk backup format: one JSON object keyed by
// collection name. Notifications are deliberately excluded.
type BackupData struct {
	Products  []entity.Product  `json:"products"`
	Suppliers []entity.Supplier `json:"suppliers"`
	Sales     []entity.Sale     `json:"sales"`
	Settings  []entity.Setting  `json:"settings"`
}

// BackupRepository exports and restores the persisted collections
type BackupRepository interface {
	// Export reads every backed-up collection, sale items included.
	Export(ctx context.Context) (*BackupData, error)
	// Restore clears the four backed-up collections and reinserts the
	// payload inside a single storage transaction, so a failure midway
	// leaves the previous data intact rather than a half-restored store.
	Restore(ctx context.Context, data *BackupData) error
}
