package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locheck/internal/delivery/http/middleware"
	"locheck/internal/domain/entity"
	mocksusecase "locheck/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationHandler_LocationNotification(t *testing.T) {
	notification := mocksusecase.NewMockNotificationUsecase(t)
	notification.EXPECT().
		RecordAndBuildPayload(mock.Anything, "device-1").
		Return(&entity.ProximityPayload{
			APS: entity.APSPayload{ContentAvailable: 1},
			LocationEvent: entity.LocationEvent{
				Latitude:  25.0478,
				Longitude: 121.5319,
				Message:   "You are near a saved location",
			},
		}, nil)

	handler := &NotificationHandler{
		uc:     notification,
		logger: slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/device/location-notification",
		strings.NewReader(`{"deviceId":"device-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.DeviceIDContextKey, "device-1")

	err := handler.LocationNotification(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"aps": {"content-available": 1},
		"locationEvent": {
			"latitude": 25.0478,
			"longitude": 121.5319,
			"message": "You are near a saved location"
		}
	}`, rec.Body.String())
}
