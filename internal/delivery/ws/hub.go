package ws

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"
)

// Hub tracks the single live connection per device. A device reconnecting
// replaces and closes its previous connection.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	logger     *slog.Logger
}

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// NewHub creates the connection hub and ties its loop to the fx lifecycle.
func NewHub(params HubParams) *Hub {
	hub := &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.run()

			return nil
		},
		OnStop: func(_ context.Context) error {
			hub.closeOnce.Do(func() { close(hub.done) })

			return nil
		},
	})

	return hub
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for deviceID, client := range h.clients {
				client.shutdown()
				delete(h.clients, deviceID)
			}
			h.mu.Unlock()

			return

		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.deviceID]; ok {
				// One connection per device; the newcomer wins.
				old.shutdown()
			}
			h.clients[client.deviceID] = client
			h.mu.Unlock()
			h.logger.Info("Device connected", slog.String("deviceID", client.deviceID))

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.deviceID]; ok && current == client {
				delete(h.clients, client.deviceID)
				h.logger.Info("Device disconnected", slog.String("deviceID", client.deviceID))
			}
			client.shutdown()
			h.mu.Unlock()
		}
	}
}

// admit hands a freshly authenticated client to the run loop. Returns false
// when the hub has already shut down, so an upgrade racing the fx stop hook
// never blocks on the register channel.
func (h *Hub) admit(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// SendToDevice delivers a frame to the device's live connection, if any.
// A full send buffer counts as undeliverable rather than blocking the hub.
func (h *Hub) SendToDevice(deviceID string, frame outFrame) bool {
	h.mu.RLock()
	client, ok := h.clients[deviceID]
	h.mu.RUnlock()

	if !ok {
		return false
	}

	return client.enqueue(frame)
}
