package repository

import (
	"context"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/pkg/pagination"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	// MarkAllRead flips the read flag on every unread notification. Invoked
	// when the notification panel is opened.
	MarkAllRead(ctx context.Context) error
}
