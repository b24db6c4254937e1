// Package ws implements the realtime telemetry channel over WebSocket.
package ws

import "encoding/json"

// Client-initiated events.
const (
	// EventIngestTelemetry streams one location sample into storage.
	EventIngestTelemetry = "ingest-telemetry"
	// EventQueryInterval asks for the device's current reporting settings.
	EventQueryInterval = "query-interval"
)

// Server-initiated events.
const (
	// EventAck answers a client frame, correlated by the frame id.
	EventAck = "ack"
	// EventTelemetryRecorded mirrors a successful ingest back to the
	// connection, carrying the same payload as its ack.
	EventTelemetryRecorded = "telemetry-recorded"
)

// Frame is one inbound protocol message. Data stays raw until the event
// handler knows which shape to decode.
type Frame struct {
	Event string          `json:"event"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outFrame is one outbound protocol message.
type outFrame struct {
	Event string `json:"event"`
	ID    string `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// errorBody is the data payload of a failed ack.
type errorBody struct {
	Success bool       `json:"success"`
	Error   *errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ingestData is the payload of an ingest-telemetry frame.
type ingestData struct {
	DeviceID  string   `json:"deviceId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  *float64 `json:"altitude"`
	Accuracy  *float64 `json:"accuracy"`
}

// queryIntervalData is the payload of a query-interval frame.
type queryIntervalData struct {
	DeviceID string `json:"deviceId"`
}

// intervalBody is the data payload of a query-interval ack.
type intervalBody struct {
	DataSendInterval    int  `json:"dataSendInterval"`
	NotificationEnabled bool `json:"notificationEnabled"`
}

// recordedBody is the shared data payload of an ingest ack and its
// telemetry-recorded mirror.
type recordedBody struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	LocationID string `json:"locationId"`
	Timestamp  string `json:"timestamp"`
}
