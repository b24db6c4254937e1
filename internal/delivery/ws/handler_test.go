package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/domain/entity"
	mocksusecase "locheck/internal/mocks/usecase"
	"locheck/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     slog.Default(),
	}
}

// newConnectedClient wires a client straight into the hub map, skipping the
// run loop. Dispatch tests only need enqueue and SendToDevice to work.
func newConnectedClient(hub *Hub, deviceID string) *Client {
	client := newClient(hub, nil, deviceID, nil, slog.Default())
	hub.clients[deviceID] = client

	return client
}

func takeFrame(t *testing.T, client *Client) outFrame {
	t.Helper()

	select {
	case frame := <-client.send:
		return frame
	default:
		t.Fatal("expected a queued frame")

		return outFrame{}
	}
}

func assertNoFrame(t *testing.T, client *Client) {
	t.Helper()

	select {
	case frame := <-client.send:
		t.Fatalf("unexpected queued frame: %+v", frame)
	default:
	}
}

func TestHandler_Dispatch_IngestTelemetry(t *testing.T) {
	hub := newTestHub()
	client := newConnectedClient(hub, "device-1")
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &Handler{
		hub:       hub,
		telemetry: telemetry,
		logger:    slog.Default(),
	}

	recordedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	telemetry.EXPECT().
		RecordTelemetry(mock.Anything, mock.MatchedBy(func(input *usecase.TelemetryInput) bool {
			return input.DeviceID == "device-1" &&
				input.ID != "" &&
				input.Latitude != nil && *input.Latitude == 25.0478
		})).
		Return(&usecase.TelemetryAck{
			Success:   true,
			Message:   "Telemetry recorded",
			Timestamp: recordedAt,
		}, nil)

	handler.dispatch(context.Background(), client, Frame{
		Event: EventIngestTelemetry,
		ID:    "req-42",
		Data:  json.RawMessage(`{"deviceId":"device-1","latitude":25.0478,"longitude":121.5319}`),
	})

	ack := takeFrame(t, client)
	assert.Equal(t, EventAck, ack.Event)
	assert.Equal(t, "req-42", ack.ID)

	mirror := takeFrame(t, client)
	assert.Equal(t, EventTelemetryRecorded, mirror.Event)
	assert.Empty(t, mirror.ID)

	// Both deliveries carry the same recorded payload.
	assert.Equal(t, ack.Data, mirror.Data)

	body, ok := ack.Data.(recordedBody)
	require.True(t, ok)
	assert.True(t, body.Success)
	assert.Equal(t, "Telemetry recorded", body.Message)
	assert.NotEmpty(t, body.LocationID)
	assert.Equal(t, recordedAt.Format(time.RFC3339Nano), body.Timestamp)
}

func TestHandler_Dispatch_IngestTelemetry_DeviceMismatch(t *testing.T) {
	hub := newTestHub()
	client := newConnectedClient(hub, "device-1")

	handler := &Handler{
		hub:    hub,
		logger: slog.Default(),
	}

	handler.dispatch(context.Background(), client, Frame{
		Event: EventIngestTelemetry,
		ID:    "req-1",
		Data:  json.RawMessage(`{"deviceId":"someone-else","latitude":1,"longitude":2}`),
	})

	ack := takeFrame(t, client)
	assert.Equal(t, EventAck, ack.Event)
	body, ok := ack.Data.(errorBody)
	require.True(t, ok)
	assert.False(t, body.Success)
	assert.Equal(t, "DEVICE_MISMATCH", body.Error.Code)
	assertNoFrame(t, client)
}

func TestHandler_Dispatch_IngestTelemetry_StorageFailureKeepsTaxonomy(t *testing.T) {
	hub := newTestHub()
	client := newConnectedClient(hub, "device-1")
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &Handler{
		hub:       hub,
		telemetry: telemetry,
		logger:    slog.Default(),
	}

	telemetry.EXPECT().
		RecordTelemetry(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDeviceNotFound)

	handler.dispatch(context.Background(), client, Frame{
		Event: EventIngestTelemetry,
		ID:    "req-2",
		Data:  json.RawMessage(`{"latitude":1,"longitude":2}`),
	})

	ack := takeFrame(t, client)
	body, ok := ack.Data.(errorBody)
	require.True(t, ok)
	assert.Equal(t, "DEVICE_NOT_FOUND", body.Error.Code)
	assertNoFrame(t, client)
}

func TestHandler_Dispatch_QueryInterval(t *testing.T) {
	hub := newTestHub()
	client := newConnectedClient(hub, "device-1")
	telemetry := mocksusecase.NewMockTelemetryUsecase(t)

	handler := &Handler{
		hub:       hub,
		telemetry: telemetry,
		logger:    slog.Default(),
	}

	telemetry.EXPECT().
		GetSettings(mock.Anything, "device-1").
		Return(&entity.DeviceSettings{
			DeviceID:            "device-1",
			DataSendInterval:    300,
			NotificationEnabled: true,
		}, nil)

	handler.dispatch(context.Background(), client, Frame{
		Event: EventQueryInterval,
		ID:    "req-3",
		Data:  json.RawMessage(`{"deviceId":"device-1"}`),
	})

	ack := takeFrame(t, client)
	assert.Equal(t, EventAck, ack.Event)
	assert.Equal(t, "req-3", ack.ID)
	body, ok := ack.Data.(intervalBody)
	require.True(t, ok)
	assert.Equal(t, 300, body.DataSendInterval)
	assert.True(t, body.NotificationEnabled)
}

func TestHandler_Dispatch_UnknownEvent(t *testing.T) {
	hub := newTestHub()
	client := newConnectedClient(hub, "device-1")

	handler := &Handler{
		hub:    hub,
		logger: slog.Default(),
	}

	handler.dispatch(context.Background(), client, Frame{Event: "subscribe", ID: "req-4"})

	ack := takeFrame(t, client)
	body, ok := ack.Data.(errorBody)
	require.True(t, ok)
	assert.Equal(t, "UNKNOWN_EVENT", body.Error.Code)
}

func TestRecordedBody_WireShape(t *testing.T) {
	raw, err := json.Marshal(recordedBody{
		Success:    true,
		Message:    "Telemetry recorded",
		LocationID: "loc-1",
		Timestamp:  "2025-06-01T12:00:00Z",
	})
	require.NoError(t, err)

	// Field names are part of the client contract.
	assert.JSONEq(t, `{
		"success": true,
		"message": "Telemetry recorded",
		"locationId": "loc-1",
		"timestamp": "2025-06-01T12:00:00Z"
	}`, string(raw))
}
