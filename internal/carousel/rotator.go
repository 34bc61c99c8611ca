// Package carousel cycles a read pointer through a fixed list of entries,
// either on demand or on a recurring tick.
package carousel

import "time"

// DefaultInterval is the automatic advance period.
const DefaultInterval = 5 * time.Second

// Rotator holds a fixed, non-empty list of entries and a current index.
//
// A Rotator is not safe for concurrent use. Its owner is expected to drive it
// from a single event loop, selecting on Ticks() alongside its other inputs
// and calling Advance() when a tick arrives.
//
// Manual navigation never re-arms the ticker: the next automatic tick still
// fires at its originally scheduled time.
type Rotator[T any] struct {
	entries       []T
	current       int
	autoAdvancing bool
	interval      time.Duration
	clock         Clock
	ticker        Ticker
	closed        bool
}

// Option configures a Rotator.
type Option func(*options)

type options struct {
	interval time.Duration
	clock    Clock
}

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// New creates a Rotator positioned at index 0 with auto-advance running.
// The entries slice is copied and never mutated afterwards.
func New[T any](entries []T, opts ...Option) (*Rotator[T], error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	o := options{interval: DefaultInterval, clock: SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Rotator[T]{
		entries:       append([]T(nil), entries...),
		autoAdvancing: true,
		interval:      o.interval,
		clock:         o.clock,
	}
	r.ticker = r.clock.NewTicker(r.interval)
	return r, nil
}

// Next moves to the following entry, wrapping to 0 after the last one.
func (r *Rotator[T]) Next() {
	r.current = (r.current + 1) % len(r.entries)
}

// Previous moves to the preceding entry, wrapping to the last one from 0.
func (r *Rotator[T]) Previous() {
	n := len(r.entries)
	r.current = (r.current - 1 + n) % n
}

// GoTo jumps directly to index. An out-of-range index leaves the state
// untouched and returns an *OutOfRangeError.
func (r *Rotator[T]) GoTo(index int) error {
	if index < 0 || index >= len(r.entries) {
		return &OutOfRangeError{Index: index, Len: len(r.entries)}
	}
	r.current = index
	return nil
}

// TogglePlayback pauses or resumes the automatic advance. Pausing stops the
// ticker; resuming arms a fresh one.
func (r *Rotator[T]) TogglePlayback() {
	r.autoAdvancing = !r.autoAdvancing
	if r.closed {
		return
	}
	if r.autoAdvancing {
		r.ticker = r.clock.NewTicker(r.interval)
		return
	}
	r.stopTicker()
}

// Advance applies one automatic tick. It is the same transition as Next.
func (r *Rotator[T]) Advance() {
	r.Next()
}

// Ticks returns the channel on which automatic ticks arrive. It is nil while
// paused or after Close, so a select on it blocks forever.
func (r *Rotator[T]) Ticks() <-chan time.Time {
	if r.ticker == nil {
		return nil
	}
	return r.ticker.C()
}

// Current returns the entry at the current index.
func (r *Rotator[T]) Current() T {
	return r.entries[r.current]
}

// Entries returns a copy of the fixed entry list.
func (r *Rotator[T]) Entries() []T {
	return append([]T(nil), r.entries...)
}

// Index returns the current position.
func (r *Rotator[T]) Index() int { return r.current }

// Len returns the number of entries.
func (r *Rotator[T]) Len() int { return len(r.entries) }

// AutoAdvancing reports whether ticks currently advance the rotator.
func (r *Rotator[T]) AutoAdvancing() bool { return r.autoAdvancing }

// Interval returns the time between automatic advances.
func (r *Rotator[T]) Interval() time.Duration { return r.interval }

// Close tears the ticker down. Navigation keeps working on a closed rotator
// but no further ticks are delivered. Close is idempotent.
func (r *Rotator[T]) Close() {
	r.closed = true
	r.stopTicker()
}

func (r *Rotator[T]) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

// Direction reports which way a move from one index to another travels on a
// ring of n entries: +1 forward, -1 backward, 0 for no move. Ties go forward.
func Direction(from, to, n int) int {
	if n <= 0 || from == to {
		return 0
	}
	forward := ((to-from)%n + n) % n
	if forward <= n-forward {
		return 1
	}
	return -1
}
