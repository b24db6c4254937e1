// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"strings"

	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceIDContextKey is the echo context key carrying the authenticated device identity.
const DeviceIDContextKey = "deviceID"

// AuthMiddleware provides middleware for bearer credential authentication.
type AuthMiddleware struct {
	registry usecase.RegistryUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(registry usecase.RegistryUsecase) *AuthMiddleware {
	return &AuthMiddleware{registry: registry}
}

// Authenticate validates the bearer credential and stores the device identity
// on the context. Verification goes through the registry so a rotated token
// fails even while its signature is still valid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthRequired
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrAuthRequired
		}

		deviceID, err := m.registry.VerifyCredential(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(DeviceIDContextKey, deviceID)

		return next(c)
	}
}

// AuthenticatedDeviceID reads the device identity set by Authenticate.
func AuthenticatedDeviceID(c echo.Context) string {
	deviceID, _ := c.Get(DeviceIDContextKey).(string)

	return deviceID
}
