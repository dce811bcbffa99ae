package repository

import (
	"context"

	"github.com/fwahome/dukapos/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data operations
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.Setting, error)
	List(ctx context.Context) ([]entity.Setting, error)
	// Upsert writes the value for a fixed key, creating the record on
	// first run and updating it afterwards.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
