package repository

import (
	"context"

	"locheck/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a device has no stored locations.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for the append-only location time series.
type LocationRepository interface {
	// CreateLocation appends a new location row. Rows are never updated or deleted.
	CreateLocation(ctx context.Context, location *entity.DeviceLocation) error

	// ListLocationsByDevice retrieves locations for a device, newest first.
	ListLocationsByDevice(ctx context.Context, deviceID string, limit, offset int) ([]*entity.DeviceLocation, error)

	// FindLatestLocation retrieves the most recent location for a device.
	FindLatestLocation(ctx context.Context, deviceID string) (*entity.DeviceLocation, error)
}
