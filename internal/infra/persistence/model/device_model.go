package model

import "time"

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It is the identity root every other row hangs off.
type DeviceModel struct {
	DeviceID   string    `gorm:"type:varchar(255);primary_key"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceInfoModel is the GORM-specific struct for the 'device_info' table.
// Descriptive columns hold encrypted envelopes, never plaintext; NULL means
// the client never provided the field.
type DeviceInfoModel struct {
	DeviceID         string  `gorm:"type:varchar(255);primary_key"`
	BatteryLevel     *string `gorm:"type:text"`
	DeviceModel      *string `gorm:"type:text"`
	DeviceName       *string `gorm:"type:text"`
	OSVersion        *string `gorm:"type:text"`
	ScreenResolution *string `gorm:"type:text"`
	AppVersion       *string `gorm:"type:text"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceInfoModel) TableName() string {
	return "device_info"
}
