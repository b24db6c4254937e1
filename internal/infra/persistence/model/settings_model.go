package model

import "time"

// DeviceSettingsModel is the GORM-specific struct for the 'device_settings'
// table. Exactly one row per device, seeded with defaults at registration.
type DeviceSettingsModel struct {
	DeviceID            string `gorm:"type:varchar(255);primary_key"`
	DataSendInterval    int    `gorm:"not null;default:60"`
	NotificationEnabled bool   `gorm:"not null;default:true"`
	PowerSaveMode       bool   `gorm:"not null;default:false"`
	LastUpdated         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceSettingsModel) TableName() string {
	return "device_settings"
}
