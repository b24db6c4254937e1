// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "locheck/internal/delivery/context"
	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/domain/service"
	"locheck/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registryService implements the RegistryUsecase interface.
type registryService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	tokenService   service.TokenService
	fieldCipher    service.FieldCipher
	validate       *validator.Validate
	logger         *slog.Logger
}

// RegistryServiceParams holds dependencies for registryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	TokenService   service.TokenService
	FieldCipher    service.FieldCipher
	Logger         *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		tokenService:   params.TokenService,
		fieldCipher:    params.FieldCipher,
		validate:       validator.New(),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register registers a device (or re-registers an existing one) and issues a
// new credential. Metadata is encrypted before the transaction opens so the
// device row lock is never held across a key-derivation wait.
func (srv *registryService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	now := time.Now().UTC()

	info, err := srv.encryptRegistrationInfo(ctx, input, now)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(input.DeviceID)
	if err != nil {
		return nil, domainerrors.ErrDeviceRegistrationFailed.WrapMessage("failed to issue credential")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		_, err := deviceRepo.FindDeviceByIDForUpdate(ctx, input.DeviceID)
		switch {
		case errors.Is(err, repository.ErrDeviceNotFound):
			device := &entity.Device{
				ID:         input.DeviceID,
				CreatedAt:  now,
				LastSeenAt: now,
			}
			if err := deviceRepo.CreateDevice(ctx, device); err != nil {
				return err
			}
		case err != nil:
			return errors.Wrap(err, "failed to lock device row")
		default:
			if err := deviceRepo.TouchLastSeen(ctx, input.DeviceID, now); err != nil {
				return err
			}
		}

		if err := deviceRepo.UpsertInfo(ctx, info); err != nil {
			return err
		}

		if err := repoFactory.SettingsRepo().EnsureDefaultSettings(ctx, entity.NewDefaultSettings(input.DeviceID)); err != nil {
			return err
		}

		credential := &entity.AuthCredential{
			DeviceID:  input.DeviceID,
			Token:     token,
			CreatedAt: now,
		}

		return repoFactory.CredentialRepo().UpsertCredential(ctx, credential)
	})
	if err != nil {
		return nil, srv.asStorageError(ctx, err, "device registration transaction failed")
	}

	srv.log(ctx).Info("Device registered", slog.String("deviceID", input.DeviceID))

	return &usecase.RegisterOutput{Token: token}, nil
}

// VerifyCredential checks a bearer token against both its signature and the
// stored credential row. Only the most recently issued token for a device
// verifies; anything rotated away is rejected for good.
func (srv *registryService) VerifyCredential(ctx context.Context, token string) (string, error) {
	deviceID, err := srv.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return "", domainerrors.ErrCredentialExpired
		}

		return "", domainerrors.ErrCredentialInvalid
	}

	stored, err := srv.credentialRepo.FindCredentialByDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrCredentialInvalid
		}

		return "", srv.asStorageError(ctx, err, "credential lookup failed")
	}

	if stored.Token != token {
		return "", domainerrors.ErrCredentialRevoked
	}

	return deviceID, nil
}

// encryptRegistrationInfo encrypts every provided metadata field into its
// storage envelope. Required fields are always present at this point.
func (srv *registryService) encryptRegistrationInfo(ctx context.Context, input *usecase.RegisterInput, now time.Time) (*entity.DeviceInfo, error) {
	info := &entity.DeviceInfo{
		DeviceID:  input.DeviceID,
		UpdatedAt: now,
	}

	fields := []struct {
		plain  *string
		target **string
	}{
		{stringPtr(input.DeviceModel), &info.DeviceModel},
		{stringPtr(input.DeviceName), &info.DeviceName},
		{stringPtr(input.OSVersion), &info.OSVersion},
		{floatString(input.BatteryLevel), &info.BatteryLevel},
		{input.ScreenResolution, &info.ScreenResolution},
		{input.AppVersion, &info.AppVersion},
	}

	for _, field := range fields {
		envelope, err := srv.fieldCipher.EncryptField(ctx, field.plain)
		if err != nil {
			srv.log(ctx).Error("Field encryption failed",
				slog.String("deviceID", input.DeviceID),
				slog.String("error", err.Error()),
			)

			return nil, domainerrors.ErrEncryptionFailed
		}
		*field.target = envelope
	}

	return info, nil
}

// asStorageError logs the root cause and hides it behind the generic
// transaction failure, unless the error already carries its own taxonomy.
func (srv *registryService) asStorageError(ctx context.Context, err error, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	srv.log(ctx).Error(msg, slog.String("error", err.Error()))

	return domainerrors.ErrTransactionFailed
}

// stringPtr returns a pointer to s, or nil for the empty string.
func stringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// floatString renders an optional number in its canonical string form for
// encryption. Numbers round-trip through strconv, not the JSON encoder.
func floatString(v *float64) *string {
	if v == nil {
		return nil
	}

	s := strconv.FormatFloat(*v, 'f', -1, 64)

	return &s
}
