package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan []byte) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-ch:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting on subscriber channel")
		return nil, false
	}
}

func TestHubScopesDeliveryBySession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub()
	go h.Run(ctx)

	a1 := NewSubscriber("a", 4)
	a2 := NewSubscriber("a", 4)
	b := NewSubscriber("b", 4)
	h.Register <- a1
	h.Register <- a2
	h.Register <- b

	h.Broadcast <- Envelope{SessionID: "a", Payload: []byte("hello a")}

	msg, ok := recv(t, a1.Send)
	require.True(t, ok)
	assert.Equal(t, "hello a", string(msg))
	msg, ok = recv(t, a2.Send)
	require.True(t, ok)
	assert.Equal(t, "hello a", string(msg))

	select {
	case <-b.Send:
		t.Fatal("subscriber of another session received the message")
	default:
	}
}

func TestHubUnregisterAndDrop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub()
	go h.Run(ctx)

	s1 := NewSubscriber("s", 1)
	s2 := NewSubscriber("s", 1)
	h.Register <- s1
	h.Register <- s2

	h.Unregister <- s1
	_, ok := recv(t, s1.Send)
	assert.False(t, ok, "unregistering closes the channel")

	// A second unregister must not panic on the closed channel.
	h.Unregister <- s1

	h.Drop <- "s"
	_, ok = recv(t, s2.Send)
	assert.False(t, ok, "dropping a session closes its subscribers")
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub()
	go h.Run(ctx)

	slow := NewSubscriber("s", 1)
	h.Register <- slow
	h.Broadcast <- Envelope{SessionID: "s", Payload: []byte("1")}
	h.Broadcast <- Envelope{SessionID: "s", Payload: []byte("2")}

	msg, ok := recv(t, slow.Send)
	require.True(t, ok)
	assert.Equal(t, "1", string(msg))
	_, ok = recv(t, slow.Send)
	assert.False(t, ok, "overflowing subscriber is closed")
}

func TestHubRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	sub := NewSubscriber("s", 1)
	h.Register <- sub
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	_, ok := recv(t, sub.Send)
	assert.False(t, ok)
}

func TestHubHelpersAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	go h.Run(ctx)

	sub := NewSubscriber("s", 1)
	require.True(t, h.Subscribe(sub))
	require.NoError(t, h.Send(context.Background(), "s", []byte("x")))
	msg, ok := recv(t, sub.Send)
	require.True(t, ok)
	assert.Equal(t, "x", string(msg))

	cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	// None of these may block once the loop is gone.
	assert.False(t, h.Subscribe(NewSubscriber("s", 1)))
	h.Unsubscribe(sub)
	h.DropSession("s")
	assert.ErrorIs(t, h.Send(context.Background(), "s", []byte("y")), ErrStopped)
}
