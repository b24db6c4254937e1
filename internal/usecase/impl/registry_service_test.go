package impl

import (
	"context"
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

// registryServiceFixtures holds all test dependencies for registry service tests.
type registryServiceFixtures struct {
	service        usecase.RegistryUsecase
	txManager      *mockRepo.MockTransactionManager
	repoFactory    *mockRepo.MockRepositoryFactory
	deviceRepo     *mockRepo.MockDeviceRepository
	settingsRepo   *mockRepo.MockSettingsRepository
	credentialRepo *mockRepo.MockCredentialRepository
	tokenService   *mockService.MockTokenService
	fieldCipher    *mockService.MockFieldCipher
}

func createTestRegistryService(t *testing.T) registryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	fieldCipher := mockService.NewMockFieldCipher(t)

	svc := NewRegistryService(RegistryServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		TokenService:   tokenService,
		FieldCipher:    fieldCipher,
		Logger:         slog.Default(),
	})

	return registryServiceFixtures{
		service:        svc,
		txManager:      txManager,
		repoFactory:    repoFactory,
		deviceRepo:     deviceRepo,
		settingsRepo:   settingsRepo,
		credentialRepo: credentialRepo,
		tokenService:   tokenService,
		fieldCipher:    fieldCipher,
	}
}

// expectEnvelopeEncryption makes the cipher mock wrap every provided value in
// a recognizable fake envelope and pass nil through untouched.
func expectEnvelopeEncryption(fc *mockService.MockFieldCipher) {
	fc.EXPECT().
		EncryptField(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, value *string) (*string, error) {
			if value == nil {
				return nil, nil
			}
			envelope := "sealed:" + *value

			return &envelope, nil
		})
}

// expectTransaction routes txManager.Execute through the mocked factory.
func expectTransaction(tm *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	tm.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		DeviceID:    "device-123",
		DeviceModel: "iPhone15,2",
		DeviceName:  "Dana's phone",
		OSVersion:   "17.4",
	}
}

func TestRegistryService_Register_NewDevice(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().DeviceRepo().Return(fx.deviceRepo)
	fx.repoFactory.EXPECT().SettingsRepo().Return(fx.settingsRepo)
	fx.repoFactory.EXPECT().CredentialRepo().Return(fx.credentialRepo)

	fx.tokenService.EXPECT().Issue("device-123").Return("token-abc", nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByIDForUpdate(mock.Anything, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "device-123", device.ID)
			assert.False(t, device.CreatedAt.IsZero())
			assert.Equal(t, device.CreatedAt, device.LastSeenAt)
		}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		UpsertInfo(mock.Anything, mock.AnythingOfType("*entity.DeviceInfo")).
		Run(func(_ context.Context, info *entity.DeviceInfo) {
			require.NotNil(t, info.DeviceModel)
			assert.Equal(t, "sealed:iPhone15,2", *info.DeviceModel)
			assert.Nil(t, info.AppVersion)
		}).
		Return(nil)

	fx.settingsRepo.EXPECT().
		EnsureDefaultSettings(mock.Anything, mock.AnythingOfType("*entity.DeviceSettings")).
		Run(func(_ context.Context, settings *entity.DeviceSettings) {
			assert.Equal(t, "device-123", settings.DeviceID)
			assert.Equal(t, entity.DefaultDataSendInterval, settings.DataSendInterval)
		}).
		Return(nil)

	fx.credentialRepo.EXPECT().
		UpsertCredential(mock.Anything, mock.AnythingOfType("*entity.AuthCredential")).
		Run(func(_ context.Context, credential *entity.AuthCredential) {
			assert.Equal(t, "device-123", credential.DeviceID)
			assert.Equal(t, "token-abc", credential.Token)
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
}

func TestRegistryService_Register_ExistingDeviceRotatesCredential(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().DeviceRepo().Return(fx.deviceRepo)
	fx.repoFactory.EXPECT().SettingsRepo().Return(fx.settingsRepo)
	fx.repoFactory.EXPECT().CredentialRepo().Return(fx.credentialRepo)

	fx.tokenService.EXPECT().Issue("device-123").Return("token-new", nil)

	existing := &entity.Device{
		ID:         "device-123",
		CreatedAt:  time.Now().Add(-24 * time.Hour),
		LastSeenAt: time.Now().Add(-time.Hour),
	}
	fx.deviceRepo.EXPECT().
		FindDeviceByIDForUpdate(mock.Anything, "device-123").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		TouchLastSeen(mock.Anything, "device-123", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpsertInfo(mock.Anything, mock.AnythingOfType("*entity.DeviceInfo")).
		Return(nil)
	fx.settingsRepo.EXPECT().
		EnsureDefaultSettings(mock.Anything, mock.AnythingOfType("*entity.DeviceSettings")).
		Return(nil)
	fx.credentialRepo.EXPECT().
		UpsertCredential(mock.Anything, mock.AnythingOfType("*entity.AuthCredential")).
		Run(func(_ context.Context, credential *entity.AuthCredential) {
			assert.Equal(t, "token-new", credential.Token)
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "token-new", out.Token)
}

func TestRegistryService_Register_ValidationFailure(t *testing.T) {
	fx := createTestRegistryService(t)

	input := validRegisterInput()
	input.DeviceModel = ""

	out, err := fx.service.Register(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRegistryService_Register_RollsUpStorageFailure(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	expectEnvelopeEncryption(fx.fieldCipher)
	fx.tokenService.EXPECT().Issue("device-123").Return("token-abc", nil)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	out, err := fx.service.Register(ctx, validRegisterInput())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestRegistryService_VerifyCredential_Valid(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("token-abc").Return("device-123", nil)
	fx.credentialRepo.EXPECT().
		FindCredentialByDevice(ctx, "device-123").
		Return(&entity.AuthCredential{DeviceID: "device-123", Token: "token-abc"}, nil)

	deviceID, err := fx.service.VerifyCredential(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "device-123", deviceID)
}

func TestRegistryService_VerifyCredential_Expired(t *testing.T) {
	fx := createTestRegistryService(t)

	fx.tokenService.EXPECT().Verify("token-old").Return("", service.ErrTokenExpired)

	_, err := fx.service.VerifyCredential(context.Background(), "token-old")
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialExpired))
}

func TestRegistryService_VerifyCredential_RotatedTokenRejected(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	// The first token still carries a valid signature, but a second
	// registration replaced the stored credential.
	fx.tokenService.EXPECT().Verify("token-first").Return("device-123", nil)
	fx.credentialRepo.EXPECT().
		FindCredentialByDevice(ctx, "device-123").
		Return(&entity.AuthCredential{DeviceID: "device-123", Token: "token-second"}, nil)

	_, err := fx.service.VerifyCredential(ctx, "token-first")
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialRevoked))
}

func TestRegistryService_VerifyCredential_NoStoredCredential(t *testing.T) {
	fx := createTestRegistryService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("token-abc").Return("device-123", nil)
	fx.credentialRepo.EXPECT().
		FindCredentialByDevice(ctx, "device-123").
		Return(nil, repository.ErrCredentialNotFound)

	_, err := fx.service.VerifyCredential(ctx, "token-abc")
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialInvalid))
}
