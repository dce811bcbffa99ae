package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/pagination"
)

// NotificationService handles notification operations
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListNotifications lists notifications newest first
func (s *NotificationService) ListNotifications(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Notification], error) {
	notifications, total, err := s.notificationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(notifications, pag), nil
}

// CountUnread returns the number of unread notifications
func (s *NotificationService) CountUnread(ctx context.Context) (int64, error) {
	return s.notificationRepo.CountUnread(ctx)
}

// MarkAllRead marks every unread notification as read
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx)
}

// NotifyLowStock records a low-stock notification for a product
func (s *NotificationService) NotifyLowStock(ctx context.Context, product *entity.Product) error {
	notification := &entity.Notification{
		Message: fmt.Sprintf("%s is low on stock: %d remaining (alert at %d)", product.Name, product.Quantity, product.QuantityAlert),
		Type:    enum.NotificationTypeLowStock,
		Date:    time.Now(),
	}
	return s.notificationRepo.Create(ctx, notification)
}

// Notify records a general notification
func (s *NotificationService) Notify(ctx context.Context, message string, notificationType enum.NotificationType) error {
	notification := &entity.Notification{
		Message: message,
		Type:    notificationType,
		Date:    time.Now(),
	}
	return s.notificationRepo.Create(ctx, notification)
}
