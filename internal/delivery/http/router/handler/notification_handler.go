package handler

import (
	"log/slog"
	"net/http"

	"locheck/internal/delivery/http/middleware"
	"locheck/internal/delivery/http/response"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification payload handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type locationNotificationInput struct {
	DeviceID string `json:"deviceId"`
}

// LocationNotification builds and records a proximity push payload. The
// response body is the payload itself, ready for a push collaborator.
func (h *NotificationHandler) LocationNotification(c echo.Context) error {
	var input locationNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	deviceID := middleware.AuthenticatedDeviceID(c)
	if input.DeviceID != "" && input.DeviceID != deviceID {
		return domainerrors.ErrDeviceMismatch
	}

	payload, err := h.uc.RecordAndBuildPayload(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, payload)
}
