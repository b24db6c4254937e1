package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"locheck/config"
	"locheck/internal/domain/entity"
	"locheck/internal/domain/repository"
	"locheck/internal/domain/service"
	mockRepo "locheck/internal/mocks/repository"
	mockService "locheck/internal/mocks/service"
	"locheck/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	locationRepo     *mockRepo.MockLocationRepository
	notificationRepo *mockRepo.MockNotificationRepository
	fieldCipher      *mockService.MockFieldCipher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	fieldCipher := mockService.NewMockFieldCipher(t)

	svc := NewNotificationService(NotificationServiceParams{
		LocationRepo:     locationRepo,
		NotificationRepo: notificationRepo,
		FieldCipher:      fieldCipher,
		Config: &config.Config{
			LocationNotification: &config.LocationNotificationConfig{
				DefaultLatitude:  25.0330,
				DefaultLongitude: 121.5654,
				Message:          "You are near a saved location",
			},
		},
		Logger: slog.Default(),
	})

	return notificationServiceFixtures{
		service:          svc,
		locationRepo:     locationRepo,
		notificationRepo: notificationRepo,
		fieldCipher:      fieldCipher,
	}
}

func TestNotificationService_BuildsPayloadFromLatestLocation(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	latest := &entity.DeviceLocation{
		ID:        "loc-9",
		DeviceID:  "device-123",
		Timestamp: time.Now(),
		Latitude:  strP("env-lat"),
		Longitude: strP("env-lng"),
	}
	fx.locationRepo.EXPECT().
		FindLatestLocation(ctx, "device-123").
		Return(latest, nil)

	fx.fieldCipher.EXPECT().
		DecryptField(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, envelope *string) service.Field {
			if envelope != nil && *envelope == "env-lat" {
				return service.Field{State: service.FieldPresent, Value: "25.0478"}
			}

			return service.Field{State: service.FieldPresent, Value: "121.5319"}
		})

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Run(func(_ context.Context, record *entity.NotificationRecord) {
			assert.Equal(t, "device-123", record.DeviceID)
			assert.Equal(t, entity.NotificationTypeLocationEvent, record.Type)

			// The audit row stores the payload exactly as returned.
			var logged entity.ProximityPayload
			require.NoError(t, json.Unmarshal([]byte(record.Message), &logged))
			assert.Equal(t, 25.0478, logged.LocationEvent.Latitude)
		}).
		Return(nil)

	payload, err := fx.service.RecordAndBuildPayload(ctx, "device-123")
	require.NoError(t, err)
	assert.Equal(t, 1, payload.APS.ContentAvailable)
	assert.Equal(t, 25.0478, payload.LocationEvent.Latitude)
	assert.Equal(t, 121.5319, payload.LocationEvent.Longitude)
	assert.Equal(t, "You are near a saved location", payload.LocationEvent.Message)
}

func TestNotificationService_FallsBackWhenNoHistory(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		FindLatestLocation(ctx, "device-123").
		Return(nil, repository.ErrLocationNotFound)

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	payload, err := fx.service.RecordAndBuildPayload(ctx, "device-123")
	require.NoError(t, err)
	assert.Equal(t, 25.0330, payload.LocationEvent.Latitude)
	assert.Equal(t, 121.5654, payload.LocationEvent.Longitude)
}

func TestNotificationService_FallsBackWhenCoordinateCorrupt(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	latest := &entity.DeviceLocation{
		ID:        "loc-9",
		DeviceID:  "device-123",
		Latitude:  strP("env-lat"),
		Longitude: strP("env-lng"),
	}
	fx.locationRepo.EXPECT().
		FindLatestLocation(ctx, "device-123").
		Return(latest, nil)

	fx.fieldCipher.EXPECT().
		DecryptField(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, envelope *string) service.Field {
			if envelope != nil && *envelope == "env-lat" {
				return service.Field{State: service.FieldCorrupt}
			}

			return service.Field{State: service.FieldPresent, Value: "121.5319"}
		})

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	payload, err := fx.service.RecordAndBuildPayload(ctx, "device-123")
	require.NoError(t, err)
	assert.Equal(t, 25.0330, payload.LocationEvent.Latitude)
	assert.Equal(t, 121.5654, payload.LocationEvent.Longitude)
}
