package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// NotificationType classifies system notifications
type NotificationType string

const (
	NotificationTypeInfo     NotificationType = "info"
	NotificationTypeWarning  NotificationType = "warning"
	NotificationTypeLowStock NotificationType = "low_stock"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *NotificationType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = NotificationType(str)
	return nil
}

func (t NotificationType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *NotificationType) Scan(value interface{}) error {
	if value == nil {
		*t = NotificationTypeInfo
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = NotificationType(v)
	case []byte:
		*t = NotificationType(string(v))
	}
	return nil
}
