package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"locheck/internal/delivery/http/middleware"
	"locheck/internal/delivery/http/response"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TelemetryHandler holds dependencies for telemetry ingestion and readback handlers.
type TelemetryHandler struct {
	uc     usecase.TelemetryUsecase
	logger *slog.Logger
}

// NewTelemetryHandler is the constructor for TelemetryHandler, injected by Fx.
func NewTelemetryHandler(uc usecase.TelemetryUsecase, logger *slog.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		uc:     uc,
		logger: logger,
	}
}

// settingsBody is the client-facing settings shape.
type settingsBody struct {
	DataSendInterval    int       `json:"dataSendInterval"`
	NotificationEnabled bool      `json:"notificationEnabled"`
	PowerSaveMode       bool      `json:"powerSaveMode"`
	LastUpdated         time.Time `json:"lastUpdated"`
}

// UpdateInfo ingests one telemetry sample over HTTP.
func (h *TelemetryHandler) UpdateInfo(c echo.Context) error {
	var input *usecase.TelemetryInput
	if err := c.Bind(&input); err != nil || input == nil {
		// An empty body or a JSON null leaves input nil without a bind error.
		return response.BindingError(c, "INVALID_INPUT", "Invalid telemetry input")
	}

	if input.DeviceID != "" && input.DeviceID != middleware.AuthenticatedDeviceID(c) {
		return domainerrors.ErrDeviceMismatch
	}
	input.DeviceID = middleware.AuthenticatedDeviceID(c)

	ack, err := h.uc.RecordTelemetry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, ack)
}

// GetSettings returns the device's current settings row.
func (h *TelemetryHandler) GetSettings(c echo.Context) error {
	deviceID := middleware.AuthenticatedDeviceID(c)

	settings, err := h.uc.GetSettings(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, map[string]any{
		"success": true,
		"settings": settingsBody{
			DataSendInterval:    settings.DataSendInterval,
			NotificationEnabled: settings.NotificationEnabled,
			PowerSaveMode:       settings.PowerSaveMode,
			LastUpdated:         settings.LastUpdated,
		},
	})
}

// ListLocations returns a page of the device's decrypted location history.
func (h *TelemetryHandler) ListLocations(c echo.Context) error {
	deviceID := middleware.AuthenticatedDeviceID(c)
	if queried := c.QueryParam("deviceId"); queried != "" {
		if queried != deviceID {
			return domainerrors.ErrDeviceMismatch
		}
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	locations, err := h.uc.ListLocations(c.Request().Context(), deviceID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, map[string]any{
		"success":   true,
		"locations": locations,
	})
}
