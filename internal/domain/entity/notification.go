package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTypeLocationEvent marks records produced by the proximity
// notification payload builder.
const NotificationTypeLocationEvent = "location-event"

// NotificationRecord is one row of the append-only notification audit log.
// It captures the payload exactly as it was handed to the push collaborator.
type NotificationRecord struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ProximityPayload is the push-notification payload for a location event.
// Delivery is an external collaborator; this service only constructs it.
type ProximityPayload struct {
	APS           APSPayload    `json:"aps"`
	LocationEvent LocationEvent `json:"locationEvent"`
}

// APSPayload carries the APNs envelope for a silent push.
type APSPayload struct {
	ContentAvailable int `json:"content-available"`
}

// LocationEvent embeds the coordinate pair and message shown to the device.
type LocationEvent struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
}
