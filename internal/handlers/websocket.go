package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/internal/hub"
)

const (
	// sendBuffer is how many fragments may queue for one connection before
	// the hub drops it as a slow subscriber.
	sendBuffer = 16
	writeWait  = 10 * time.Second
)

// wsClient is a middleman between one websocket connection and the hub.
type wsClient struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
	logger     *slog.Logger
}

// ServeWS streams the fragments pushed to a session, i.e. automatic
// carousel advances, over a websocket. It blocks until the connection ends.
func (h *LiveHandler) ServeWS(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return liveError(c, err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err, "session_id", sess.ID())
		return nil
	}

	sub := hub.NewSubscriber(sess.ID(), sendBuffer)
	if !h.hub.Subscribe(sub) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}

	client := &wsClient{
		conn:       conn,
		hub:        h.hub,
		subscriber: sub,
		logger:     slog.Default().With("session_id", sess.ID()),
	}
	client.logger.Debug("WebSocket connected")

	go client.writePump()
	client.readPump(c.Request().Context())
	return nil
}

// readPump drains the connection until it closes. Pushes are one-way, so
// anything the browser sends is discarded.
func (c *wsClient) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unsubscribe(c.subscriber)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				c.logger.Debug("WebSocket closed normally")
			} else {
				c.logger.Debug("WebSocket read ended", "error", err)
			}
			return
		}
	}
}

// writePump writes hub fragments to the connection. The hub closes the
// channel when the session is unmounted or the subscriber falls behind.
func (c *wsClient) writePump() {
	for message := range c.subscriber.Send {
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		err := c.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			c.logger.Debug("writePump error", "error", err)
			c.conn.Close(websocket.StatusInternalError, "write failed")
			return
		}
	}
	c.conn.Close(websocket.StatusGoingAway, "session ended")
}
