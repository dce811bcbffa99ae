package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fwahome/dukapos/internal/domain/entity"
	domainRepo "github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/pagination"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domainRepo.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Notification, int64, error) {
	var notifications []entity.Notification
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Notification{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC").
		Find(&notifications).Error

	return notifications, total, err
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("read = ?", false).
		Count(&total).Error
	return total, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("read = ?", false).
		Update("read", true).Error
}
