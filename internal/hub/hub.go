package hub

import (
	"context"
	"errors"
	"log/slog"
)

// ErrStopped is returned when sending to a hub whose loop has exited.
var ErrStopped = errors.New("hub stopped")

// Subscriber represents a single websocket client of one live session.
// It contains the channel through which the Hub sends rendered fragments.
type Subscriber struct {
	// SessionID scopes delivery: the subscriber only receives messages for it.
	SessionID string

	// Send is a buffered channel of outbound messages. The Hub sends messages
	// to this channel, and the client is responsible for reading from it.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a buffered send channel.
func NewSubscriber(sessionID string, buffer int) *Subscriber {
	return &Subscriber{SessionID: sessionID, Send: make(chan []byte, buffer)}
}

// Envelope is a payload addressed to every subscriber of a session.
type Envelope struct {
	SessionID string
	Payload   []byte
}

// Hub is a concurrent fan-out loop. It maintains the set of active
// subscribers per session and delivers envelopes to them.
type Hub struct {
	// Registered subscribers, grouped by session.
	sessions map[string]map[*Subscriber]struct{}

	// Broadcast delivers an envelope to all subscribers of its session.
	Broadcast chan Envelope

	// Register is a channel for new subscribers to register with the hub.
	Register chan *Subscriber

	// Unregister is a channel for subscribers to unregister from the hub.
	Unregister chan *Subscriber

	// Drop closes every subscriber of a session, e.g. when it is unmounted.
	Drop chan string

	// done is closed when Run returns.
	done chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan Envelope),
		Register:   make(chan *Subscriber),
		Unregister: make(chan *Subscriber),
		Drop:       make(chan string),
		done:       make(chan struct{}),
		sessions:   make(map[string]map[*Subscriber]struct{}),
	}
}

// Run starts the Hub's message processing loop. It must be run in a separate
// goroutine and returns when ctx is cancelled, closing every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for id := range h.sessions {
				h.drop(id)
			}
			return

		case sub := <-h.Register:
			subs, ok := h.sessions[sub.SessionID]
			if !ok {
				subs = make(map[*Subscriber]struct{})
				h.sessions[sub.SessionID] = subs
			}
			subs[sub] = struct{}{}
			slog.Debug("Subscriber registered", "session_id", sub.SessionID, "session_subscribers", len(subs))

		case sub := <-h.Unregister:
			h.remove(sub)

		case id := <-h.Drop:
			h.drop(id)

		case env := <-h.Broadcast:
			subs := h.sessions[env.SessionID]
			slog.Debug("Broadcasting message", "session_id", env.SessionID, "recipient_count", len(subs))
			for sub := range subs {
				// Use a non-blocking send. If the subscriber's buffer is full,
				// it suggests the client is lagging or disconnected.
				select {
				case sub.Send <- env.Payload:
				default:
					slog.Warn("Unregistering slow subscriber", "session_id", sub.SessionID)
					h.remove(sub)
				}
			}
		}
	}
}

func (h *Hub) remove(sub *Subscriber) {
	subs, ok := h.sessions[sub.SessionID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.Send)
	if len(subs) == 0 {
		delete(h.sessions, sub.SessionID)
	}
	slog.Debug("Subscriber unregistered", "session_id", sub.SessionID)
}

func (h *Hub) drop(sessionID string) {
	for sub := range h.sessions[sessionID] {
		close(sub.Send)
	}
	delete(h.sessions, sessionID)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} { return h.done }

// Subscribe registers sub unless the hub has stopped. It reports whether
// the subscriber was handed to the hub.
func (h *Hub) Subscribe(sub *Subscriber) bool {
	select {
	case h.Register <- sub:
		return true
	case <-h.done:
		return false
	}
}

// Unsubscribe unregisters sub. It is a no-op once the hub has stopped.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.Unregister <- sub:
	case <-h.done:
	}
}

// Send delivers payload to the subscribers of sessionID, giving up when ctx
// is cancelled or the hub has stopped.
func (h *Hub) Send(ctx context.Context, sessionID string, payload []byte) error {
	select {
	case h.Broadcast <- Envelope{SessionID: sessionID, Payload: payload}:
		return nil
	case <-h.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DropSession closes every subscriber of sessionID. It is a no-op once the
// hub has stopped.
func (h *Hub) DropSession(sessionID string) {
	select {
	case h.Drop <- sessionID:
	case <-h.done:
	}
}
