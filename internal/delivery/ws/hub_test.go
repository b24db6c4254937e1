package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_NewConnectionReplacesOld(t *testing.T) {
	hub := newTestHub()
	go hub.run()
	defer func() { hub.closeOnce.Do(func() { close(hub.done) }) }()

	first := newClient(hub, nil, "device-1", nil, hub.logger)
	second := newClient(hub, nil, "device-1", nil, hub.logger)

	hub.register <- first
	hub.register <- second

	// The replaced connection gets shut down, not the new one.
	select {
	case <-first.done:
	case <-time.After(time.Second):
		t.Fatal("replaced connection was not shut down")
	}
	select {
	case <-second.done:
		t.Fatal("new connection must stay open")
	default:
	}

	assert.True(t, hub.SendToDevice("device-1", outFrame{Event: EventAck}))
	assert.True(t, second.enqueue(outFrame{Event: EventAck}))
	assert.False(t, first.enqueue(outFrame{Event: EventAck}))
}

func TestHub_UnregisterOnlyRemovesCurrentConnection(t *testing.T) {
	hub := newTestHub()
	go hub.run()
	defer func() { hub.closeOnce.Do(func() { close(hub.done) }) }()

	first := newClient(hub, nil, "device-1", nil, hub.logger)
	second := newClient(hub, nil, "device-1", nil, hub.logger)

	hub.register <- first
	hub.register <- second

	// A stale unregister from the replaced connection must not evict the
	// replacement.
	hub.unregister <- first
	assert.True(t, hub.SendToDevice("device-1", outFrame{Event: EventAck}))

	hub.unregister <- second
	assert.Eventually(t, func() bool {
		return !hub.SendToDevice("device-1", outFrame{Event: EventAck})
	}, time.Second, 10*time.Millisecond)
}

func TestHub_AdmitAfterShutdown(t *testing.T) {
	// The run loop has already exited, so nothing will ever receive on the
	// register channel. admit must notice and fail instead of blocking.
	hub := newTestHub()
	hub.closeOnce.Do(func() { close(hub.done) })

	late := newClient(hub, nil, "device-1", nil, hub.logger)
	result := make(chan bool, 1)
	go func() { result <- hub.admit(late) }()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("admit blocked after hub shutdown")
	}
}

func TestHub_SendToDevice_UnknownDevice(t *testing.T) {
	hub := newTestHub()

	assert.False(t, hub.SendToDevice("ghost", outFrame{Event: EventAck}))
}
