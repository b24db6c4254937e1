// Package usecase defines the application's business logic interfaces.
package usecase

import (
	"context"
)

// RegisterInput carries the self-registration request. The device generates
// its own identifier; descriptive metadata is encrypted before storage.
type RegisterInput struct {
	DeviceID         string   `json:"deviceId" validate:"required"`
	DeviceModel      string   `json:"deviceModel" validate:"required"`
	DeviceName       string   `json:"deviceName" validate:"required"`
	OSVersion        string   `json:"osVersion" validate:"required"`
	BatteryLevel     *float64 `json:"batteryLevel"`
	ScreenResolution *string  `json:"screenResolution"`
	AppVersion       *string  `json:"appVersion"`
}

// RegisterOutput carries the freshly issued bearer credential.
type RegisterOutput struct {
	Token string `json:"token"`
}

// RegistryUsecase defines the interface for device identity management.
type RegistryUsecase interface {
	// Register registers a device (or re-registers an existing one) and
	// issues a new credential. Re-registration rotates the credential;
	// the previous token becomes permanently invalid.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// VerifyCredential checks a bearer token and returns the device identity
	// it was issued to. A token that was rotated away fails verification
	// even if its signature and expiry are still valid.
	VerifyCredential(ctx context.Context, token string) (deviceID string, err error)
}
