package entity

import (
	"time"

	"github.com/fwahome/dukapos/internal/domain/enum"
)

// Notification is a system event shown in the notification panel.
// Notifications are excluded from backup and restore.
type Notification struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	Message   string                `gorm:"type:text;not null" json:"message"`
	Type      enum.NotificationType `gorm:"size:50;not null" json:"type"`
	Date      time.Time             `gorm:"index;not null" json:"date"`
	Read      bool                  `gorm:"index;not null;default:false" json:"read"`
	CreatedAt time.Time             `json:"created_at"`
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
