// Package entity contains the core business objects of the project.
package entity

import "time"

// Device is the identity record for a registered mobile device.
// The ID is client-generated and never changes; the row is never deleted.
type Device struct {
	ID         string    `json:"device_id"`    // Client-generated unique device identifier.
	CreatedAt  time.Time `json:"created_at"`   // Timestamp of first registration.
	LastSeenAt time.Time `json:"last_seen_at"` // Updated on every authenticated write.
}

// DeviceInfo is the mutable metadata for a device. All descriptive fields are
// stored as encrypted envelopes (see service.FieldCipher), never plaintext.
// A nil field means the client never provided it. One row per device,
// overwritten on each update.
type DeviceInfo struct {
	DeviceID         string    `json:"device_id"`
	BatteryLevel     *string   `json:"battery_level"`     // Envelope.
	DeviceModel      *string   `json:"device_model"`      // Envelope.
	DeviceName       *string   `json:"device_name"`       // Envelope.
	OSVersion        *string   `json:"os_version"`        // Envelope.
	ScreenResolution *string   `json:"screen_resolution"` // Envelope.
	AppVersion       *string   `json:"app_version"`       // Envelope.
	UpdatedAt        time.Time `json:"updated_at"`
}
