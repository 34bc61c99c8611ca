package live

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/gogoz/internal/carousel"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}
func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (c *fakeClock) NewTicker(time.Duration) carousel.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *fakeClock) last() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[len(c.tickers)-1]
}

type capturePublisher struct {
	msgs chan pubsub.Message
}

func (p *capturePublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.msgs <- msg
	return nil
}
func (p *capturePublisher) Close() error { return nil }

func newTestManager(t *testing.T) (*Manager, *fakeClock, *capturePublisher) {
	t.Helper()
	site, err := content.Embedded()
	require.NoError(t, err)
	clock := &fakeClock{}
	pub := &capturePublisher{msgs: make(chan pubsub.Message, 8)}
	m := NewManager(content.NewStore(site), pub, Settings{Clock: clock}, time.Minute)
	t.Cleanup(m.Shutdown)
	return m, clock, pub
}

func TestMountInitialState(t *testing.T) {
	m, _, _ := newTestManager(t)

	s, err := m.Mount("visitor", 500)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1, m.Len())

	err = s.Do(context.Background(), func(tx *Tx) error {
		st := tx.Nav.State()
		assert.True(t, st.Compact)
		assert.False(t, st.OverlayOpen)
		assert.Equal(t, 0, tx.Rotator.Index())
		assert.True(t, tx.Rotator.AutoAdvancing())
		assert.Equal(t, 6, tx.Rotator.Len())
		return nil
	})
	require.NoError(t, err)
}

func TestSelectRecordsScroll(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("visitor", 500)
	require.NoError(t, err)

	var scrolls []string
	err = s.Do(context.Background(), func(tx *Tx) error {
		tx.Nav.ToggleOverlay()
		tx.Nav.SelectItem(3, "#contact")
		scrolls = tx.Scrolls()
		assert.False(t, tx.Nav.State().OverlayOpen)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#contact"}, scrolls)

	// Scrolls do not leak into the next action.
	err = s.Do(context.Background(), func(tx *Tx) error {
		assert.Empty(t, tx.Scrolls())
		return nil
	})
	require.NoError(t, err)
}

func TestResizeThroughViewport(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("visitor", 500)
	require.NoError(t, err)

	require.NoError(t, s.Do(context.Background(), func(tx *Tx) error {
		tx.Nav.ToggleOverlay()
		tx.Viewport.Resize(1024)
		assert.False(t, tx.Nav.State().Compact)
		assert.False(t, tx.Nav.State().OverlayOpen)
		return nil
	}))
}

func TestTickPublishesRotation(t *testing.T) {
	m, clock, pub := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	clock.last().ch <- time.Now()

	select {
	case msg := <-pub.msgs:
		assert.Equal(t, TopicRotated.Name(), msg.Topic)
		assert.Equal(t, s.ID(), msg.SessionID)
		var ev RotatedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &ev))
		assert.Equal(t, RotatedEvent{Previous: 0, Index: 1, AutoAdvancing: true}, ev)
	case <-time.After(time.Second):
		t.Fatal("tick was not published")
	}

	require.NoError(t, s.Do(context.Background(), func(tx *Tx) error {
		assert.Equal(t, 1, tx.Rotator.Index())
		return nil
	}))
}

func TestPausedSessionIgnoresTicks(t *testing.T) {
	m, clock, pub := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)
	first := clock.last()

	require.NoError(t, s.Do(context.Background(), func(tx *Tx) error {
		tx.Rotator.TogglePlayback()
		return nil
	}))
	assert.True(t, first.isStopped())

	select {
	case first.ch <- time.Now():
		t.Fatal("paused session still receives from the old ticker")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, pub.msgs)
}

func TestDoErrorsAndPanics(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	err = s.Do(context.Background(), func(tx *Tx) error {
		return tx.Rotator.GoTo(99)
	})
	assert.ErrorIs(t, err, carousel.ErrOutOfRange)

	err = s.Do(context.Background(), func(tx *Tx) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// The loop survives a panicking action.
	require.NoError(t, s.Do(context.Background(), func(tx *Tx) error { return nil }))
}

func TestDoSerialisesActions(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), func(tx *Tx) error {
				tx.Rotator.Next()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(context.Background(), func(tx *Tx) error {
		assert.Equal(t, workers%6, tx.Rotator.Index())
		return nil
	}))
}

func TestAuthorize(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("owner", 1024)
	require.NoError(t, err)

	got, err := m.Authorize(s.ID(), "owner")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Authorize(s.ID(), "intruder")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = m.Authorize("missing", "owner")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUnmountTearsDown(t *testing.T) {
	m, clock, _ := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	var closed []string
	m.OnClose(func(id string) { closed = append(closed, id) })

	require.NoError(t, m.Unmount(s.ID()))
	assert.True(t, s.Closed())
	assert.True(t, clock.last().isStopped(), "rotator ticker is cancelled on unmount")
	assert.Equal(t, []string{s.ID()}, closed)
	assert.Equal(t, 0, m.Len())

	assert.ErrorIs(t, m.Unmount(s.ID()), ErrSessionNotFound)
	assert.ErrorIs(t, s.Do(context.Background(), func(*Tx) error { return nil }), ErrSessionClosed)
	s.Close()
}

func TestReap(t *testing.T) {
	m, _, _ := newTestManager(t)
	idle, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Reap(time.Now()))
	assert.Equal(t, 1, m.Reap(time.Now().Add(2*time.Minute)))
	assert.True(t, idle.Closed())
	assert.Equal(t, 0, m.Len())
}

func TestRunShutsDownOnCancel(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Mount("visitor", 1024)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, s.Closed())
}
