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

const (
	defaultLocationLimit = 100
	maxLocationLimit     = 1000
)

// telemetryService implements the TelemetryUsecase interface.
type telemetryService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	settingsRepo repository.SettingsRepository
	fieldCipher  service.FieldCipher
	validate     *validator.Validate
	logger       *slog.Logger
}

// TelemetryServiceParams holds dependencies for telemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	SettingsRepo repository.SettingsRepository
	FieldCipher  service.FieldCipher
	Logger       *slog.Logger
}

// NewTelemetryService is the constructor for telemetryService.
func NewTelemetryService(params TelemetryServiceParams) usecase.TelemetryUsecase {
	return &telemetryService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		settingsRepo: params.SettingsRepo,
		fieldCipher:  params.FieldCipher,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *telemetryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordTelemetry validates, encrypts and atomically persists one telemetry
// sample. Envelopes are sealed before the transaction opens; inside it the
// device row is locked so concurrent writers for one device serialize.
func (srv *telemetryService) RecordTelemetry(ctx context.Context, input *usecase.TelemetryInput) (*usecase.TelemetryAck, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	now := time.Now().UTC()
	sampleTime := now
	if input.Timestamp != nil {
		sampleTime = input.Timestamp.UTC()
	}

	location, info, err := srv.encryptSample(ctx, input, sampleTime, now)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		if _, err := deviceRepo.FindDeviceByIDForUpdate(ctx, input.DeviceID); err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return domainerrors.ErrDeviceNotFound
			}

			return errors.Wrap(err, "failed to lock device row")
		}

		if err := deviceRepo.TouchLastSeen(ctx, input.DeviceID, now); err != nil {
			return err
		}

		if err := deviceRepo.UpsertInfo(ctx, info); err != nil {
			return err
		}

		return repoFactory.LocationRepo().CreateLocation(ctx, location)
	})
	if err != nil {
		return nil, srv.asStorageError(ctx, err, "telemetry transaction failed")
	}

	return &usecase.TelemetryAck{
		Success:   true,
		Message:   "Telemetry recorded",
		Timestamp: now,
	}, nil
}

// GetSettings retrieves the device's settings row. An absent row is NotFound,
// never a zero-valued default.
func (srv *telemetryService) GetSettings(ctx context.Context, deviceID string) (*entity.DeviceSettings, error) {
	settings, err := srv.settingsRepo.FindSettingsByDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, srv.asStorageError(ctx, err, "settings lookup failed")
	}

	return settings, nil
}

// ListLocations retrieves and decrypts the device's location history, newest
// first. A row whose envelopes fail to decrypt keeps its place in the result
// with nil coordinates; one bad row never poisons the page.
func (srv *telemetryService) ListLocations(ctx context.Context, deviceID string, limit, offset int) ([]*usecase.LocationRecord, error) {
	if limit <= 0 {
		limit = defaultLocationLimit
	}
	if limit > maxLocationLimit {
		limit = maxLocationLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := srv.locationRepo.ListLocationsByDevice(ctx, deviceID, limit, offset)
	if err != nil {
		return nil, srv.asStorageError(ctx, err, "location listing failed")
	}

	records := make([]*usecase.LocationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, srv.decryptLocation(ctx, row))
	}

	return records, nil
}

// decryptLocation opens each coordinate envelope of one row. Corrupt
// envelopes degrade that field to nil and leave an integrity warning.
func (srv *telemetryService) decryptLocation(ctx context.Context, row *entity.DeviceLocation) *usecase.LocationRecord {
	record := &usecase.LocationRecord{
		ID:        row.ID,
		DeviceID:  row.DeviceID,
		Timestamp: row.Timestamp,
	}

	fields := []struct {
		name     string
		envelope *string
		target   **float64
	}{
		{"latitude", row.Latitude, &record.Latitude},
		{"longitude", row.Longitude, &record.Longitude},
		{"altitude", row.Altitude, &record.Altitude},
		{"accuracy", row.Accuracy, &record.Accuracy},
	}

	for _, field := range fields {
		result := srv.fieldCipher.DecryptField(ctx, field.envelope)
		switch result.State {
		case service.FieldPresent:
			value, err := strconv.ParseFloat(result.Value, 64)
			if err != nil {
				srv.log(ctx).Warn("Stored location field is not numeric",
					slog.String("deviceID", row.DeviceID),
					slog.String("locationID", row.ID),
					slog.String("field", field.name),
				)

				continue
			}
			*field.target = &value
		case service.FieldCorrupt:
			srv.log(ctx).Warn("Stored location field failed integrity check",
				slog.String("deviceID", row.DeviceID),
				slog.String("locationID", row.ID),
				slog.String("field", field.name),
			)
		case service.FieldAbsent:
			// Never provided; nil is the honest answer.
		}
	}

	return record
}

// encryptSample seals the coordinate and metadata envelopes for one sample.
func (srv *telemetryService) encryptSample(ctx context.Context, input *usecase.TelemetryInput, sampleTime, now time.Time) (*entity.DeviceLocation, *entity.DeviceInfo, error) {
	location := &entity.DeviceLocation{
		ID:        input.ID,
		DeviceID:  input.DeviceID,
		Timestamp: sampleTime,
	}
	info := &entity.DeviceInfo{
		DeviceID:  input.DeviceID,
		UpdatedAt: now,
	}

	fields := []struct {
		plain  *string
		target **string
	}{
		{floatString(input.Latitude), &location.Latitude},
		{floatString(input.Longitude), &location.Longitude},
		{floatString(input.Altitude), &location.Altitude},
		{floatString(input.Accuracy), &location.Accuracy},
		{floatString(input.BatteryLevel), &info.BatteryLevel},
		{input.DeviceModel, &info.DeviceModel},
		{input.DeviceName, &info.DeviceName},
		{input.OSVersion, &info.OSVersion},
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

			return nil, nil, domainerrors.ErrEncryptionFailed
		}
		*field.target = envelope
	}

	return location, info, nil
}

// asStorageError logs the root cause and hides it behind the generic
// transaction failure, unless the error already carries its own taxonomy.
func (srv *telemetryService) asStorageError(ctx context.Context, err error, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	srv.log(ctx).Error(msg, slog.String("error", err.Error()))

	return domainerrors.ErrTransactionFailed
}
