package repository

import (
	"context"

	"locheck/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when a device has no settings row.
var ErrSettingsNotFound = errors.New("device settings not found")

// SettingsRepository defines the interface for per-device settings persistence.
type SettingsRepository interface {
	// EnsureDefaultSettings creates the settings row with defaults if it does
	// not exist yet. An existing row is left untouched.
	EnsureDefaultSettings(ctx context.Context, settings *entity.DeviceSettings) error

	// FindSettingsByDevice retrieves the settings row for a device.
	FindSettingsByDevice(ctx context.Context, deviceID string) (*entity.DeviceSettings, error)
}
