package model

import "time"

// DeviceLocationModel is the GORM-specific struct for the 'device_locations'
// table. Coordinate columns hold encrypted envelopes. Rows are append-only.
type DeviceLocationModel struct {
	ID        string    `gorm:"type:varchar(255);primary_key"`
	DeviceID  string    `gorm:"type:varchar(255);not null;index:idx_device_locations_device_ts,priority:1"`
	Timestamp time.Time `gorm:"not null;index:idx_device_locations_device_ts,priority:2"`
	Latitude  *string   `gorm:"type:text"`
	Longitude *string   `gorm:"type:text"`
	Altitude  *string   `gorm:"type:text"`
	Accuracy  *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceLocationModel) TableName() string {
	return "device_locations"
}
