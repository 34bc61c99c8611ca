// Package live hosts the per-page state of mounted browsers. Every mounted
// page owns one Session: a navigation controller and a testimonial rotator
// driven by a single event loop, so that clicks, resizes and timer ticks are
// applied one at a time.
package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nfrund/gogoz/internal/carousel"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/nav"
	"github.com/nfrund/gogoz/internal/pubsub"
)

var (
	ErrSessionNotFound = errors.New("live session not found")
	ErrSessionClosed   = errors.New("live session closed")
	ErrForbidden       = errors.New("live session belongs to another visitor")
)

// Tx is the view of a session handed to an action running on its loop.
// Its fields must not be retained after the action returns.
type Tx struct {
	SessionID string
	Site      *content.Site
	Viewport  *nav.Viewport
	Nav       *nav.Controller
	Rotator   *carousel.Rotator[content.Testimonial]

	scrolls []string
}

// Scrolls returns the anchors the navigation asked to scroll to during
// this action, in order.
func (tx *Tx) Scrolls() []string {
	return append([]string(nil), tx.scrolls...)
}

type command struct {
	fn   func(*Tx) error
	done chan error
}

// Session is one mounted page.
type Session struct {
	id        string
	visitorID string
	site      *content.Site
	publisher pubsub.Publisher
	logger    *slog.Logger

	viewport *nav.Viewport
	nav      *nav.Controller
	rotator  *carousel.Rotator[content.Testimonial]
	tx       *Tx

	cmds      chan command
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	lastSeen  atomic.Int64
}

// Settings tune every session created by a Manager.
type Settings struct {
	Breakpoint int
	Interval   time.Duration
	Clock      carousel.Clock
}

func newSession(id, visitorID string, site *content.Site, width int, publisher pubsub.Publisher, settings Settings) (*Session, error) {
	s := &Session{
		id:        id,
		visitorID: visitorID,
		site:      site,
		publisher: publisher,
		logger:    slog.Default().With("session_id", id),
		cmds:      make(chan command),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	rotator, err := carousel.New(site.Testimonials.Items,
		carousel.WithInterval(settings.Interval),
		carousel.WithClock(settings.Clock),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mount testimonials: %w", err)
	}

	s.rotator = rotator
	s.viewport = nav.NewViewport(width)
	s.nav = nav.NewController(s.viewport, s, site.NavEntries(), nav.WithBreakpoint(settings.Breakpoint))
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.touch()

	go s.run()
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// VisitorID returns the visitor that mounted the session.
func (s *Session) VisitorID() string { return s.visitorID }

// Site returns the content snapshot taken when the session was mounted.
func (s *Session) Site() *content.Site { return s.site }

// LastSeen returns the time of the last action or mount.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

// ScrollTo implements nav.Scroller by recording the anchor on the running
// action, which hands it to the presentation layer.
func (s *Session) ScrollTo(anchor string) {
	if s.tx != nil {
		s.tx.scrolls = append(s.tx.scrolls, anchor)
	}
}

// Do runs fn on the session loop and waits for it to finish. Actions never
// overlap with each other or with automatic ticks.
func (s *Session) Do(ctx context.Context, fn func(*Tx) error) error {
	cmd := command{fn: fn, done: make(chan error, 1)}
	select {
	case s.cmds <- cmd:
	case <-s.quit:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	s.touch()

	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close unmounts the session: the loop stops, the rotator's ticker is torn
// down and the resize subscription removed. Close blocks until the loop has
// exited and is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}

// Closed reports whether the loop has exited.
func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) run() {
	defer s.teardown()
	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.cmds:
			cmd.done <- s.exec(cmd.fn)
		case <-s.rotator.Ticks():
			s.tick()
		}
	}
}

func (s *Session) exec(fn func(*Tx) error) (err error) {
	s.tx = &Tx{
		SessionID: s.id,
		Site:      s.site,
		Viewport:  s.viewport,
		Nav:       s.nav,
		Rotator:   s.rotator,
	}
	defer func() {
		s.tx = nil
		if r := recover(); r != nil {
			s.logger.Error("Live action panicked", "panic", r)
			err = fmt.Errorf("live action panicked: %v", r)
		}
	}()
	return fn(s.tx)
}

func (s *Session) tick() {
	previous := s.rotator.Index()
	s.rotator.Advance()

	event := RotatedEvent{
		Previous:      previous,
		Index:         s.rotator.Index(),
		AutoAdvancing: s.rotator.AutoAdvancing(),
	}
	if s.publisher == nil {
		return
	}
	if err := pubsub.Publish(s.ctx, s.publisher, TopicRotated, s.id, event); err != nil {
		s.logger.Error("Failed to publish rotation", "error", err)
	}
}

func (s *Session) teardown() {
	s.rotator.Close()
	s.nav.Close()
	s.cancel()
	close(s.done)
	s.logger.Debug("Live session unmounted")
}
