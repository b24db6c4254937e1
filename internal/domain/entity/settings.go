package entity

import "time"

// Default values seeded into a settings row at registration.
const (
	DefaultDataSendInterval = 60
)

// DeviceSettings holds the push/transmission preferences for a device.
// Exactly one row per device, created with defaults at registration.
type DeviceSettings struct {
	DeviceID            string    `json:"device_id"`
	DataSendInterval    int       `json:"data_send_interval"` // Seconds between telemetry pings.
	NotificationEnabled bool      `json:"notification_enabled"`
	PowerSaveMode       bool      `json:"power_save_mode"`
	LastUpdated         time.Time `json:"last_updated"`
}

// NewDefaultSettings returns the settings seeded for a freshly registered device.
func NewDefaultSettings(deviceID string) *DeviceSettings {
	return &DeviceSettings{
		DeviceID:            deviceID,
		DataSendInterval:    DefaultDataSendInterval,
		NotificationEnabled: true,
		PowerSaveMode:       false,
	}
}
