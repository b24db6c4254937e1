package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"locheck/config"
	deliverycontext "locheck/internal/delivery/context"
	"locheck/internal/domain/entity"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/repository"
	"locheck/internal/domain/service"
	"locheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNotificationMessage = "You are near a saved location"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	locationRepo     repository.LocationRepository
	notificationRepo repository.NotificationRepository
	fieldCipher      service.FieldCipher
	fallback         config.LocationNotificationConfig
	message          string
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	LocationRepo     repository.LocationRepository
	NotificationRepo repository.NotificationRepository
	FieldCipher      service.FieldCipher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	fallback := config.LocationNotificationConfig{}
	if params.Config != nil && params.Config.LocationNotification != nil {
		fallback = *params.Config.LocationNotification
	}

	message := fallback.Message
	if message == "" {
		message = defaultNotificationMessage
	}

	return &notificationService{
		locationRepo:     params.LocationRepo,
		notificationRepo: params.NotificationRepo,
		fieldCipher:      params.FieldCipher,
		fallback:         fallback,
		message:          message,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordAndBuildPayload builds a silent-push payload from the device's most
// recent location and records it in the audit log. The payload is returned to
// the caller; actually pushing it is someone else's job.
func (srv *notificationService) RecordAndBuildPayload(ctx context.Context, deviceID string) (*entity.ProximityPayload, error) {
	latitude, longitude := srv.resolveCoordinates(ctx, deviceID)

	payload := &entity.ProximityPayload{
		APS: entity.APSPayload{ContentAvailable: 1},
		LocationEvent: entity.LocationEvent{
			Latitude:  latitude,
			Longitude: longitude,
			Message:   srv.message,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal notification payload")
	}

	record := &entity.NotificationRecord{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Type:      entity.NotificationTypeLocationEvent,
		Message:   string(body),
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.notificationRepo.CreateNotification(ctx, record); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to record notification", slog.String("error", err.Error()))

		return nil, domainerrors.ErrTransactionFailed
	}

	return payload, nil
}

// resolveCoordinates decrypts the latest stored coordinate pair. No history,
// a corrupt envelope or an unparsable value all fall back to the configured
// defaults; payload building never fails on bad location data.
func (srv *notificationService) resolveCoordinates(ctx context.Context, deviceID string) (float64, float64) {
	latest, err := srv.locationRepo.FindLatestLocation(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repository.ErrLocationNotFound) {
			srv.log(ctx).Warn("Latest location lookup failed",
				slog.String("deviceID", deviceID),
				slog.String("error", err.Error()),
			)
		}

		return srv.fallback.DefaultLatitude, srv.fallback.DefaultLongitude
	}

	latitude, latOK := srv.decryptCoordinate(ctx, deviceID, "latitude", latest.Latitude)
	longitude, lngOK := srv.decryptCoordinate(ctx, deviceID, "longitude", latest.Longitude)
	if !latOK || !lngOK {
		return srv.fallback.DefaultLatitude, srv.fallback.DefaultLongitude
	}

	return latitude, longitude
}

func (srv *notificationService) decryptCoordinate(ctx context.Context, deviceID, name string, envelope *string) (float64, bool) {
	result := srv.fieldCipher.DecryptField(ctx, envelope)
	if result.State != service.FieldPresent {
		if result.State == service.FieldCorrupt {
			srv.log(ctx).Warn("Stored coordinate failed integrity check",
				slog.String("deviceID", deviceID),
				slog.String("field", name),
			)
		}

		return 0, false
	}

	value, err := strconv.ParseFloat(result.Value, 64)
	if err != nil {
		srv.log(ctx).Warn("Stored coordinate is not numeric",
			slog.String("deviceID", deviceID),
			slog.String("field", name),
		)

		return 0, false
	}

	return value, true
}
