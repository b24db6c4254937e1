package repository

import (
	"context"

	"locheck/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when a device has no stored credential.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the interface for the single-active-credential store.
type CredentialRepository interface {
	// UpsertCredential stores the credential for a device, replacing any
	// previous one. The replaced token becomes permanently invalid.
	UpsertCredential(ctx context.Context, credential *entity.AuthCredential) error

	// FindCredentialByDevice retrieves the currently active credential for a device.
	FindCredentialByDevice(ctx context.Context, deviceID string) (*entity.AuthCredential, error)
}
