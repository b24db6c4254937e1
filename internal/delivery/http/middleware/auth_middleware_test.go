package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "locheck/internal/domain/errors"
	mocksusecase "locheck/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/device/verify", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate_SetsDeviceID(t *testing.T) {
	registry := mocksusecase.NewMockRegistryUsecase(t)
	registry.EXPECT().
		VerifyCredential(mock.Anything, "good-token").
		Return("device-1", nil)

	c := newAuthTestContext(t, "Bearer good-token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, "device-1", AuthenticatedDeviceID(c))

		return nil
	}

	err := NewAuthMiddleware(registry).Authenticate(next)(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	registry := mocksusecase.NewMockRegistryUsecase(t)

	c := newAuthTestContext(t, "")

	err := NewAuthMiddleware(registry).Authenticate(func(echo.Context) error {
		t.Fatal("next must not run without a credential")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	registry := mocksusecase.NewMockRegistryUsecase(t)

	c := newAuthTestContext(t, "Basic abc123")

	err := NewAuthMiddleware(registry).Authenticate(func(echo.Context) error {
		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestAuthMiddleware_Authenticate_RotatedToken(t *testing.T) {
	registry := mocksusecase.NewMockRegistryUsecase(t)
	registry.EXPECT().
		VerifyCredential(mock.Anything, "stale-token").
		Return("", domainerrors.ErrCredentialRevoked)

	c := newAuthTestContext(t, "Bearer stale-token")

	err := NewAuthMiddleware(registry).Authenticate(func(echo.Context) error {
		t.Fatal("next must not run with a rotated credential")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrCredentialRevoked)
}
