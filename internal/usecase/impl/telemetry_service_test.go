package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/domain/service"
	mockRepo "locheck/internal/mocks/repository"
	mockService "locheck/internal/mocks/service"
	"locheck/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// telemetryServiceFixtures holds all test dependencies for telemetry service tests.
type telemetryServiceFixtures struct {
	service      usecase.TelemetryUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	deviceRepo   *mockRepo.MockDeviceRepository
	locationRepo *mockRepo.MockLocationRepository
	settingsRepo *mockRepo.MockSettingsRepository
	fieldCipher  *mockService.MockFieldCipher
}

func createTestTelemetryService(t *testing.T) telemetryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	fieldCipher := mockService.NewMockFieldCipher(t)

	svc := NewTelemetryService(TelemetryServiceParams{
		TxManager:    txManager,
		LocationRepo: locationRepo,
		SettingsRepo: settingsRepo,
		FieldCipher:  fieldCipher,
		Logger:       slog.Default(),
	})

	return telemetryServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		deviceRepo:   deviceRepo,
		locationRepo: locationRepo,
		settingsRepo: settingsRepo,
		fieldCipher:  fieldCipher,
	}
}

func floatP(v float64) *float64 { return &v }

func strP(s string) *string { return &s }

func validTelemetryInput() *usecase.TelemetryInput {
	return &usecase.TelemetryInput{
		ID:        "loc-1",
		DeviceID:  "device-123",
		Latitude:  floatP(25.0478),
		Longitude: floatP(121.5319),
		Altitude:  floatP(12.5),
	}
}

func TestTelemetryService_RecordTelemetry_CommitsSample(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().DeviceRepo().Return(fx.deviceRepo)
	fx.repoFactory.EXPECT().LocationRepo().Return(fx.locationRepo)

	fx.deviceRepo.EXPECT().
		FindDeviceByIDForUpdate(mock.Anything, "device-123").
		Return(&entity.Device{ID: "device-123"}, nil)
	fx.deviceRepo.EXPECT().
		TouchLastSeen(mock.Anything, "device-123", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpsertInfo(mock.Anything, mock.AnythingOfType("*entity.DeviceInfo")).
		Return(nil)

	fx.locationRepo.EXPECT().
		CreateLocation(mock.Anything, mock.AnythingOfType("*entity.DeviceLocation")).
		Run(func(_ context.Context, location *entity.DeviceLocation) {
			assert.Equal(t, "loc-1", location.ID)
			assert.Equal(t, "device-123", location.DeviceID)
			require.NotNil(t, location.Latitude)
			assert.Equal(t, "sealed:25.0478", *location.Latitude)
			require.NotNil(t, location.Longitude)
			assert.Equal(t, "sealed:121.5319", *location.Longitude)
			assert.Nil(t, location.Accuracy)
		}).
		Return(nil)

	ack, err := fx.service.RecordTelemetry(ctx, validTelemetryInput())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.False(t, ack.Timestamp.IsZero())
}

func TestTelemetryService_RecordTelemetry_UnknownDevice(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().DeviceRepo().Return(fx.deviceRepo)

	fx.deviceRepo.EXPECT().
		FindDeviceByIDForUpdate(mock.Anything, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	ack, err := fx.service.RecordTelemetry(ctx, validTelemetryInput())
	require.Error(t, err)
	assert.Nil(t, ack)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestTelemetryService_RecordTelemetry_MissingCoordinate(t *testing.T) {
	fx := createTestTelemetryService(t)

	input := validTelemetryInput()
	input.Latitude = nil

	ack, err := fx.service.RecordTelemetry(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, ack)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTelemetryService_RecordTelemetry_ZeroCoordinateIsValid(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().DeviceRepo().Return(fx.deviceRepo)
	fx.repoFactory.EXPECT().LocationRepo().Return(fx.locationRepo)

	fx.deviceRepo.EXPECT().
		FindDeviceByIDForUpdate(mock.Anything, "device-123").
		Return(&entity.Device{ID: "device-123"}, nil)
	fx.deviceRepo.EXPECT().
		TouchLastSeen(mock.Anything, "device-123", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpsertInfo(mock.Anything, mock.AnythingOfType("*entity.DeviceInfo")).
		Return(nil)
	fx.locationRepo.EXPECT().
		CreateLocation(mock.Anything, mock.AnythingOfType("*entity.DeviceLocation")).
		Run(func(_ context.Context, location *entity.DeviceLocation) {
			require.NotNil(t, location.Latitude)
			assert.Equal(t, "sealed:0", *location.Latitude)
		}).
		Return(nil)

	// The equator is a real place.
	input := validTelemetryInput()
	input.Latitude = floatP(0)

	ack, err := fx.service.RecordTelemetry(ctx, input)
	require.NoError(t, err)
	assert.True(t, ack.Success)
}

func TestTelemetryService_GetSettings_Found(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	stored := &entity.DeviceSettings{
		DeviceID:            "device-123",
		DataSendInterval:    30,
		NotificationEnabled: true,
		LastUpdated:         time.Now(),
	}
	fx.settingsRepo.EXPECT().
		FindSettingsByDevice(ctx, "device-123").
		Return(stored, nil)

	settings, err := fx.service.GetSettings(ctx, "device-123")
	require.NoError(t, err)
	assert.Equal(t, 30, settings.DataSendInterval)
}

func TestTelemetryService_GetSettings_Absent(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		FindSettingsByDevice(ctx, "device-123").
		Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.GetSettings(ctx, "device-123")
	require.Error(t, err)
	assert.Nil(t, settings)
	assert.True(t, errors.Is(err, domainerrors.ErrSettingsNotFound))
}

func TestTelemetryService_ListLocations_DegradesCorruptFields(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	rows := []*entity.DeviceLocation{
		{
			ID:        "loc-1",
			DeviceID:  "device-123",
			Timestamp: time.Now(),
			Latitude:  strP("good-lat"),
			Longitude: strP("bad-lng"),
		},
	}
	fx.locationRepo.EXPECT().
		ListLocationsByDevice(ctx, "device-123", 100, 0).
		Return(rows, nil)

	fx.fieldCipher.EXPECT().
		DecryptField(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, envelope *string) service.Field {
			switch {
			case envelope == nil:
				return service.Field{State: service.FieldAbsent}
			case *envelope == "bad-lng":
				return service.Field{State: service.FieldCorrupt}
			default:
				return service.Field{State: service.FieldPresent, Value: "25.0478"}
			}
		})

	records, err := fx.service.ListLocations(ctx, "device-123", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Latitude)
	assert.Equal(t, 25.0478, *records[0].Latitude)
	assert.Nil(t, records[0].Longitude, "corrupt envelope must degrade to nil")
	assert.Nil(t, records[0].Altitude, "absent field stays nil")

	// Decrypted coordinates serialize as the numbers the client sent,
	// not their string form inside the envelope.
	raw, err := json.Marshal(records[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"latitude":25.0478`)
	assert.Contains(t, string(raw), `"longitude":null`)
}

func TestTelemetryService_ListLocations_NonNumericValueDegrades(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	rows := []*entity.DeviceLocation{
		{
			ID:        "loc-1",
			DeviceID:  "device-123",
			Timestamp: time.Now(),
			Latitude:  strP("sealed-lat"),
		},
	}
	fx.locationRepo.EXPECT().
		ListLocationsByDevice(ctx, "device-123", 100, 0).
		Return(rows, nil)

	fx.fieldCipher.EXPECT().
		DecryptField(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, envelope *string) service.Field {
			if envelope == nil {
				return service.Field{State: service.FieldAbsent}
			}

			return service.Field{State: service.FieldPresent, Value: "not-a-number"}
		})

	records, err := fx.service.ListLocations(ctx, "device-123", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Latitude, "unparseable value must degrade to nil")
}

func TestTelemetryService_ListLocations_ClampsLimit(t *testing.T) {
	fx := createTestTelemetryService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		ListLocationsByDevice(ctx, "device-123", maxLocationLimit, 0).
		Return([]*entity.DeviceLocation{}, nil)

	records, err := fx.service.ListLocations(ctx, "device-123", 999999, -5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
