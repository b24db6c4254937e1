// Package service defines the interfaces for domain services.
package service

import "github.com/pkg/errors"

// Verification failure reasons. Callers map these onto the auth error catalogue.
var (
	// ErrTokenInvalid is returned when a token fails signature or claim checks.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned when a token is well-formed but expired.
	ErrTokenExpired = errors.New("token expired")
)

// TokenService defines the interface for issuing and verifying device bearer credentials.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token embedding the device identity.
	Issue(deviceID string) (string, error)

	// Verify checks a token and returns the embedded device identity.
	// Fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (deviceID string, err error)
}
