package entity

import "time"

// AuthCredential is the single active bearer credential for a device.
// Re-issuing replaces the row: rotation, not append. A token that is no
// longer the stored one never verifies again.
type AuthCredential struct {
	DeviceID  string    `json:"device_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
