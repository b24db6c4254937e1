// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"locheck/config"
	"locheck/internal/domain/service"
)

// credentialTTL is the lifetime of an issued device credential.
const credentialTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing device tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Auth == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Auth,
		ttl:    credentialTTL,
	}, nil
}

// Issue creates a signed token embedding the device identity.
func (s *jwtService) Issue(deviceID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"deviceId": deviceID,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded device ID.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", service.ErrTokenExpired
		}

		return "", service.ErrTokenInvalid
	}
	if !token.Valid {
		return "", service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", service.ErrTokenInvalid
	}

	deviceID, ok := claims["deviceId"].(string)
	if !ok || deviceID == "" {
		return "", service.ErrTokenInvalid
	}

	return deviceID, nil
}
