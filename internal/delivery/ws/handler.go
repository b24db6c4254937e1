package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "locheck/internal/delivery/context"
	domainerrors "locheck/internal/domain/errors"
	"locheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventTimeout bounds the storage work triggered by one inbound frame.
const eventTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for mobile app access
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Handler authenticates websocket upgrades and dispatches protocol events.
type Handler struct {
	hub       *Hub
	registry  usecase.RegistryUsecase
	telemetry usecase.TelemetryUsecase
	logger    *slog.Logger
}

// HandlerParams holds dependencies for the websocket Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Hub       *Hub
	Registry  usecase.RegistryUsecase
	Telemetry usecase.TelemetryUsecase
	Logger    *slog.Logger
}

// NewHandler is the constructor for the websocket Handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		hub:       params.Hub,
		registry:  params.Registry,
		telemetry: params.Telemetry,
		logger:    params.Logger,
	}
}

// HandleConnection verifies the credential BEFORE upgrading. A failed check
// is an ordinary 401 response; the protocol never admits the connection.
func (h *Handler) HandleConnection(c echo.Context) error {
	token := bearerToken(c.Request())
	if token == "" {
		token = c.QueryParam("token")
	}
	if token == "" {
		return domainerrors.ErrAuthRequired
	}

	deviceID, err := h.registry.VerifyCredential(c.Request().Context(), token)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	client := newClient(h.hub, conn, deviceID, h.dispatch, h.logger)
	if !h.hub.admit(client) {
		conn.Close()

		return nil
	}

	go client.writePump()
	// The connection outlives the upgrade request, so pumps run on a
	// fresh context rather than the request's. Scope the logger by device
	// the way the HTTP layer scopes it by request ID.
	pumpCtx := deliverycontext.WithLogger(
		context.Background(),
		h.logger.With(slog.String("deviceID", deviceID)),
	)
	go client.readPump(pumpCtx)

	return nil
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}

func (h *Handler) dispatch(ctx context.Context, client *Client, frame Frame) {
	ctx, cancel := context.WithTimeout(ctx, eventTimeout)
	defer cancel()

	switch frame.Event {
	case EventIngestTelemetry:
		h.handleIngest(ctx, client, frame)
	case EventQueryInterval:
		h.handleQueryInterval(ctx, client, frame)
	default:
		h.sendErrorAck(client, frame.ID, "UNKNOWN_EVENT", "unsupported event: "+frame.Event)
	}
}

// handleIngest runs the same validation and transaction as the HTTP ingest
// path, then answers twice with one payload: the correlated ack and the
// telemetry-recorded mirror.
func (h *Handler) handleIngest(ctx context.Context, client *Client, frame Frame) {
	var data ingestData
	if err := json.Unmarshal(frame.Data, &data); err != nil {
		h.sendErrorAck(client, frame.ID, "VALIDATION_FAILED", "malformed ingest payload")

		return
	}

	if data.DeviceID != "" && data.DeviceID != client.deviceID {
		h.sendErrorAck(client, frame.ID, domainerrors.ErrDeviceMismatch.ErrorCode(), domainerrors.ErrDeviceMismatch.Message())

		return
	}

	input := &usecase.TelemetryInput{
		ID:        uuid.NewString(),
		DeviceID:  client.deviceID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Altitude:  data.Altitude,
		Accuracy:  data.Accuracy,
	}

	ack, err := h.telemetry.RecordTelemetry(ctx, input)
	if err != nil {
		h.sendFailure(client, frame.ID, err)

		return
	}

	body := recordedBody{
		Success:    true,
		Message:    ack.Message,
		LocationID: input.ID,
		Timestamp:  ack.Timestamp.Format(time.RFC3339Nano),
	}

	client.enqueue(outFrame{Event: EventAck, ID: frame.ID, Data: body})
	h.hub.SendToDevice(client.deviceID, outFrame{Event: EventTelemetryRecorded, Data: body})
}

func (h *Handler) handleQueryInterval(ctx context.Context, client *Client, frame Frame) {
	var data queryIntervalData
	if err := json.Unmarshal(frame.Data, &data); err != nil {
		h.sendErrorAck(client, frame.ID, "VALIDATION_FAILED", "malformed query payload")

		return
	}

	if data.DeviceID != "" && data.DeviceID != client.deviceID {
		h.sendErrorAck(client, frame.ID, domainerrors.ErrDeviceMismatch.ErrorCode(), domainerrors.ErrDeviceMismatch.Message())

		return
	}

	settings, err := h.telemetry.GetSettings(ctx, client.deviceID)
	if err != nil {
		h.sendFailure(client, frame.ID, err)

		return
	}

	client.enqueue(outFrame{
		Event: EventAck,
		ID:    frame.ID,
		Data: intervalBody{
			DataSendInterval:    settings.DataSendInterval,
			NotificationEnabled: settings.NotificationEnabled,
		},
	})
}

// sendFailure maps an error onto the ack error shape, reusing the
// application error taxonomy when the error carries one.
func (h *Handler) sendFailure(client *Client, frameID string, err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		h.sendErrorAck(client, frameID, appErr.ErrorCode(), appErr.Message())

		return
	}

	h.logger.Error("WebSocket event failed",
		slog.String("deviceID", client.deviceID),
		slog.String("error", err.Error()),
	)
	h.sendErrorAck(client, frameID, "INTERNAL_ERROR", "internal error")
}

func (h *Handler) sendErrorAck(client *Client, frameID, code, message string) {
	client.enqueue(outFrame{
		Event: EventAck,
		ID:    frameID,
		Data: errorBody{Error: &errorInfo{
			Code:    code,
			Message: message,
		}},
	})
}
