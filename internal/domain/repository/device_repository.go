// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"locheck/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device identity and metadata operations.
type DeviceRepository interface {
	// CreateDevice persists a new device identity row.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its client-generated identifier.
	FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindDeviceByIDForUpdate retrieves a device and locks its row for the
	// duration of the surrounding transaction, serializing writers per device.
	FindDeviceByIDForUpdate(ctx context.Context, deviceID string) (*entity.Device, error)

	// TouchLastSeen updates the device's last_seen_at timestamp.
	TouchLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error

	// UpsertInfo overwrites the device's metadata envelopes. No history is kept.
	UpsertInfo(ctx context.Context, info *entity.DeviceInfo) error
}
