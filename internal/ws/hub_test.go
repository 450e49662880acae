package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, hub *Hub, userID string) *Client {
	t.Helper()
	client := &Client{Hub: hub, Send: make(chan []byte, 8), UserID: userID}
	hub.Register <- client

	deadline := time.Now().Add(time.Second)
	for !hub.IsUserOnline(userID) {
		if time.Now().After(deadline) {
			t.Fatalf("client for user %s never registered", userID)
		}
		time.Sleep(time.Millisecond)
	}
	return client
}

func TestSendToUserTargetsAllConnections(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := register(t, hub, "user-1")
	second := register(t, hub, "user-1")
	other := register(t, hub, "user-2")

	hub.SendToUser("user-1", []byte("hello"))

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.Send:
			assert.Equal(t, "hello", string(msg))
		case <-time.After(time.Second):
			t.Fatal("expected delivery to every connection of the user")
		}
	}

	select {
	case <-other.Send:
		t.Fatal("user-2 must not receive user-1 payloads")
	default:
	}
}

func TestSendToUserEvictsSlowConnection(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	healthy := register(t, hub, "user-1")

	slow := &Client{Hub: hub, Send: make(chan []byte, 1), UserID: "user-1"}
	slow.Send <- []byte("stuck")
	hub.Register <- slow
	deadline := time.Now().Add(time.Second)
	for {
		hub.mutex.Lock()
		conns := len(hub.userClients["user-1"])
		hub.mutex.Unlock()
		if conns == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("second connection never registered")
		}
		time.Sleep(time.Millisecond)
	}

	hub.SendToUser("user-1", []byte("hello"))

	select {
	case msg := <-healthy.Send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("healthy connection never received the payload")
	}

	<-slow.Send
	select {
	case _, open := <-slow.Send:
		require.False(t, open, "slow connection channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("slow connection was never evicted")
	}
	assert.True(t, hub.IsUserOnline("user-1"))
}

func TestSendToUnknownUserIsNoop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.SendToUser("nobody", []byte("hello"))
}

func TestUnregisterTakesUserOffline(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := register(t, hub, "user-1")
	second := register(t, hub, "user-1")

	hub.Unregister <- first
	deadline := time.Now().Add(time.Second)
	for {
		if _, open := <-first.Send; !open {
			break
		}
		require.True(t, time.Now().Before(deadline), "send channel never closed")
	}
	assert.True(t, hub.IsUserOnline("user-1"))

	hub.Unregister <- second
	deadline = time.Now().Add(time.Second)
	for hub.IsUserOnline("user-1") {
		if time.Now().After(deadline) {
			t.Fatal("user never went offline")
		}
		time.Sleep(time.Millisecond)
	}
}
