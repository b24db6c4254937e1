package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications'
// table, the append-only audit log of built payloads.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	DeviceID  string    `gorm:"type:varchar(255);not null;index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
