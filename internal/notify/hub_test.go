package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID uint) *Client {
	return &Client{
		Hub:    hub,
		UserID: userID,
		Role:   "merchant",
		Send:   make(chan []byte, 4),
	}
}

func waitOnline(t *testing.T, hub *Hub, userID uint, online bool) {
	require.Eventually(t, func() bool {
		return hub.IsUserOnline(userID) == online
	}, time.Second, 5*time.Millisecond)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, 1)
	hub.Register(client)
	waitOnline(t, hub, 1, true)

	hub.Unregister(client)
	waitOnline(t, hub, 1, false)

	// Send is closed exactly when the session is removed
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHub_UnregisterTwice_OtherSessionsSurvive(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newTestClient(hub, 1)
	second := newTestClient(hub, 1)
	hub.Register(first)
	hub.Register(second)
	waitOnline(t, hub, 1, true)

	// both the buffer-full drop and the read pump defer can unregister
	// the same session; the second pass must not close Send again
	hub.Unregister(first)
	hub.Unregister(first)

	require.Eventually(t, func() bool {
		select {
		case _, open := <-first.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	hub.SendToUser(1, Event{Type: "order.approved"})

	require.Eventually(t, func() bool {
		return len(second.Send) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, hub.IsUserOnline(1))
}

func TestHub_SendToUser_TargetsOneUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	mine := newTestClient(hub, 1)
	theirs := newTestClient(hub, 2)
	hub.Register(mine)
	hub.Register(theirs)
	waitOnline(t, hub, 1, true)
	waitOnline(t, hub, 2, true)

	hub.SendToUser(1, Event{Type: "invoice.overdue"})

	require.Eventually(t, func() bool {
		return len(mine.Send) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, theirs.Send)
}
