package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locheck/internal/delivery/http/middleware"
	domainerrors "locheck/internal/domain/errors"
	mocksusecase "locheck/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTelemetryContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.DeviceIDContextKey, "device-1")

	return c, rec
}

func TestTelemetryHandler_UpdateInfo_RejectsForeignDeviceID(t *testing.T) {
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &TelemetryHandler{
		uc:     telemetry,
		logger: slog.Default(),
	}

	body := `{"id":"sample-1","deviceId":"someone-else","latitude":25.0478,"longitude":121.5319}`
	c, _ := newTelemetryContext(t, http.MethodPost, "/device/info", body)

	err := handler.UpdateInfo(c)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceMismatch)
}

func TestTelemetryHandler_UpdateInfo_NullBody(t *testing.T) {
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &TelemetryHandler{
		uc:     telemetry,
		logger: slog.Default(),
	}

	// echo's binder decodes a JSON null into a nil input without an error.
	c, rec := newTelemetryContext(t, http.MethodPost, "/device/info", "null")

	err := handler.UpdateInfo(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestTelemetryHandler_UpdateInfo_EmptyBody(t *testing.T) {
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &TelemetryHandler{
		uc:     telemetry,
		logger: slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/device/info", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.DeviceIDContextKey, "device-1")

	err := handler.UpdateInfo(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestTelemetryHandler_ListLocations_RejectsForeignQuery(t *testing.T) {
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &TelemetryHandler{
		uc:     telemetry,
		logger: slog.Default(),
	}

	c, _ := newTelemetryContext(t, http.MethodGet, "/device/locations?deviceId=someone-else", "")

	err := handler.ListLocations(c)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceMismatch)
}
