package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512 * 1024 // 512KB

	sendBufferSize = 256
)

// frameHandler processes one decoded inbound frame for a client.
type frameHandler func(ctx context.Context, client *Client, frame Frame)

// Client is the middleman between one authenticated websocket connection
// and the hub. Its device identity is fixed at handshake time.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan outFrame
	done     chan struct{}
	stopOnce sync.Once
	deviceID string
	handle   frameHandler
	logger   *slog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, deviceID string, handle frameHandler, logger *slog.Logger) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan outFrame, sendBufferSize),
		done:     make(chan struct{}),
		deviceID: deviceID,
		handle:   handle,
		logger:   logger,
	}
}

// shutdown signals both pumps to stop. Safe to call more than once.
func (c *Client) shutdown() {
	c.stopOnce.Do(func() { close(c.done) })
}

// enqueue offers a frame to the write pump without ever blocking the caller.
func (c *Client) enqueue(frame outFrame) bool {
	select {
	case <-c.done:
		return false
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// readPump pumps frames from the websocket connection into the handler.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket read failed",
					slog.String("deviceID", c.deviceID),
					slog.String("error", err.Error()),
				)
			}

			break
		}

		var frame Frame
		if err := json.Unmarshal(message, &frame); err != nil {
			c.enqueue(outFrame{
				Event: EventAck,
				Data: errorBody{Error: &errorInfo{
					Code:    "MALFORMED_FRAME",
					Message: "frame is not valid JSON",
				}},
			})

			continue
		}

		c.handle(ctx, c, frame)
	}
}

// writePump pumps frames from the send channel to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})

			return
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
