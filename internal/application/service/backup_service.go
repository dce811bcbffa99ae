package service

import (
	"context"
	"fmt"
	"log"

	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
)

// BackupService exports and restores the persisted collections
type BackupService struct {
	backupRepo repository.BackupRepository
	notifier   *NotificationService
}

// NewBackupService creates a new backup service
func NewBackupService(backupRepo repository.BackupRepository, notifier *NotificationService) *BackupService {
	return &BackupService{
		backupRepo: backupRepo,
		notifier:   notifier,
	}
}

// Export returns everything worth carrying to another machine.
// Notifications stay behind.
func (s *BackupService) Export(ctx context.Context) (*repository.BackupData, error) {
	return s.backupRepo.Export(ctx)
}

// Restore replaces the current data with the backup payload. The swap is
// transactional: a failure leaves the existing data untouched. The actor
// is the authenticated username, recorded in the notification.
func (s *BackupService) Restore(ctx context.Context, data *repository.BackupData, actor string) error {
	if data == nil {
		return apperror.NewBadRequestError("Backup payload is required")
	}

	if err := s.backupRepo.Restore(ctx, data); err != nil {
		log.Printf("Restore failed: %v", err)
		return apperror.NewStorageFailure()
	}

	message := fmt.Sprintf("Backup restored by %s: %d products, %d suppliers, %d sales",
		actor, len(data.Products), len(data.Suppliers), len(data.Sales))
	s.notifier.Notify(ctx, message, enum.NotificationTypeInfo)

	return nil
}
