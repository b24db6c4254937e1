package usecase

import (
	"context"

	"locheck/internal/domain/entity"
)

// NotificationUsecase defines the interface for building silent-push payloads.
// Delivery itself is out of scope; every built payload is recorded verbatim.
type NotificationUsecase interface {
	// RecordAndBuildPayload builds a location-event payload from the device's
	// most recent location and appends it to the notification audit log.
	// Missing or undecryptable coordinates fall back to configured defaults.
	RecordAndBuildPayload(ctx context.Context, deviceID string) (*entity.ProximityPayload, error)
}
