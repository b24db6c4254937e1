package usecase

import (
	"context"
	"time"

	"locheck/internal/domain/entity"
)

// TelemetryInput carries one client-reported telemetry sample. Coordinate and
// battery fields are pointers so a legitimate zero survives the required check.
type TelemetryInput struct {
	ID               string     `json:"id" validate:"required"`
	DeviceID         string     `json:"deviceId" validate:"required"`
	Timestamp        *time.Time `json:"timestamp"`
	Latitude         *float64   `json:"latitude" validate:"required"`
	Longitude        *float64   `json:"longitude" validate:"required"`
	Altitude         *float64   `json:"altitude"`
	Accuracy         *float64   `json:"accuracy"`
	BatteryLevel     *float64   `json:"batteryLevel"`
	DeviceModel      *string    `json:"deviceModel"`
	DeviceName       *string    `json:"deviceName"`
	OSVersion        *string    `json:"osVersion"`
	ScreenResolution *string    `json:"screenResolution"`
	AppVersion       *string    `json:"appVersion"`
}

// TelemetryAck confirms a committed telemetry write.
type TelemetryAck struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationRecord is one decrypted row of the location history. Coordinates
// come back as the numbers the client originally sent; fields that were never
// provided, or whose envelopes failed to decrypt, come back nil.
type LocationRecord struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"deviceId"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Altitude  *float64  `json:"altitude"`
	Accuracy  *float64  `json:"accuracy"`
}

// TelemetryUsecase defines the interface for telemetry ingestion and readback.
type TelemetryUsecase interface {
	// RecordTelemetry validates, encrypts and atomically persists one sample.
	// The device must already be registered; nothing is written otherwise.
	RecordTelemetry(ctx context.Context, input *TelemetryInput) (*TelemetryAck, error)

	// GetSettings retrieves the device's current settings row.
	GetSettings(ctx context.Context, deviceID string) (*entity.DeviceSettings, error)

	// ListLocations retrieves the device's location history, newest first.
	// Rows with undecryptable coordinates are returned with nil fields
	// rather than aborting the whole read.
	ListLocations(ctx context.Context, deviceID string, limit, offset int) ([]*LocationRecord, error)
}
