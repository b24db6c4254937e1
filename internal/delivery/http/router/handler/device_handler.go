// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"locheck/internal/delivery/http/middleware"
	"locheck/internal/delivery/http/response"
	"locheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device identity handlers.
type DeviceHandler struct {
	uc     usecase.RegistryUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.RegistryUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the device self-registration request. The response body
// shape is fixed by the mobile client: just the token.
func (h *DeviceHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusCreated, map[string]string{"token": output.Token})
}

// Verify confirms the caller's credential is the currently active one.
// Authentication middleware already did the real work.
func (h *DeviceHandler) Verify(c echo.Context) error {
	return response.Raw(c, http.StatusOK, map[string]string{
		"message":  "Token is valid",
		"deviceId": middleware.AuthenticatedDeviceID(c),
	})
}
