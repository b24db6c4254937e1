package entity

import "time"

// DeviceLocation is one point of the append-only location time series.
// Coordinate fields are encrypted envelopes; rows are never updated or
// deleted and are retrieved newest first.
type DeviceLocation struct {
	ID        string    `json:"id"` // Unique location id, client- or server-assigned.
	DeviceID  string    `json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  *string   `json:"latitude"`  // Envelope.
	Longitude *string   `json:"longitude"` // Envelope.
	Altitude  *string   `json:"altitude"`  // Envelope.
	Accuracy  *string   `json:"accuracy"`  // Envelope.
}
