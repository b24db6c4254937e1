package model

import "time"

// AuthCredentialModel is the GORM-specific struct for the 'auth_credentials'
// table. The device_id primary key enforces at most one credential per device;
// re-issuing overwrites the row.
type AuthCredentialModel struct {
	DeviceID  string `gorm:"type:varchar(255);primary_key"`
	Token     string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthCredentialModel) TableName() string {
	return "auth_credentials"
}
