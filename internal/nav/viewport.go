package nav

// Viewport is a MetricsSource fed by explicit Resize calls, typically from
// the presentation layer forwarding browser resize events.
//
// Like Controller, it is meant to be driven from a single goroutine.
type Viewport struct {
	width  int
	nextID int
	subs   map[int]func(int)
}

// NewViewport creates a viewport with the given initial width.
func NewViewport(width int) *Viewport {
	return &Viewport{width: width, subs: make(map[int]func(int))}
}

// Width implements MetricsSource.
func (v *Viewport) Width() int { return v.width }

// Subscribe implements MetricsSource.
func (v *Viewport) Subscribe(fn func(int)) func() {
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

// Resize records the new width and notifies every subscriber.
func (v *Viewport) Resize(width int) {
	v.width = width
	for _, fn := range v.subs {
		fn(width)
	}
}

// Subscribers returns the number of registered listeners.
func (v *Viewport) Subscribers() int { return len(v.subs) }
