// Package nav reconciles the two navigation layouts of the site: a persistent
// sidebar on wide viewports and a collapsible overlay on compact ones.
package nav

// DefaultBreakpoint is the viewport width, in logical pixels, below which the
// navigation switches to compact mode.
const DefaultBreakpoint = 768

// NoSelection is the Selected value before any item has been chosen.
const NoSelection = -1

// Entry is one fixed navigation target.
type Entry struct {
	Label  string
	Anchor string
	Icon   string
}

// MetricsSource supplies the current viewport width and resize notifications.
type MetricsSource interface {
	Width() int
	// Subscribe registers fn for every future width change and returns the
	// function that removes it.
	Subscribe(fn func(width int)) (unsubscribe func())
}

// Scroller smoothly brings the section named by anchor into view.
type Scroller interface {
	ScrollTo(anchor string)
}

// State is a snapshot of the controller for rendering.
type State struct {
	Compact     bool
	OverlayOpen bool
	Selected    int
}

// PanelVisible reports whether the entry list is on screen: always in wide
// mode, only with the overlay open in compact mode.
func (s State) PanelVisible() bool {
	return !s.Compact || s.OverlayOpen
}

// Controller is the single source of truth for navigation visibility and
// the active item. It is not safe for concurrent use; callers serialise
// events through their own loop.
type Controller struct {
	entries     []Entry
	breakpoint  int
	scroller    Scroller
	unsubscribe func()

	compact     bool
	overlayOpen bool
	selected    int
}

// Option configures a Controller.
type Option func(*Controller)

// WithBreakpoint overrides DefaultBreakpoint. Non-positive values are ignored.
func WithBreakpoint(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.breakpoint = px
		}
	}
}

// NewController mounts a controller: compactness is measured from metrics
// right away and the controller listens for resizes until Close.
func NewController(metrics MetricsSource, scroller Scroller, entries []Entry, opts ...Option) *Controller {
	c := &Controller{
		entries:    append([]Entry(nil), entries...),
		breakpoint: DefaultBreakpoint,
		scroller:   scroller,
		selected:   NoSelection,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.compact = metrics.Width() < c.breakpoint
	c.unsubscribe = metrics.Subscribe(c.OnViewportResize)
	return c
}

// OnViewportResize recomputes compactness. Leaving compact mode closes the
// overlay; an unchanged mode is a no-op.
func (c *Controller) OnViewportResize(width int) {
	compact := width < c.breakpoint
	if compact == c.compact {
		return
	}
	c.compact = compact
	if !compact {
		c.overlayOpen = false
	}
}

// ToggleOverlay opens or closes the overlay. It does nothing in wide mode,
// where the sidebar is always shown.
func (c *Controller) ToggleOverlay() {
	if !c.compact {
		return
	}
	c.overlayOpen = !c.overlayOpen
}

// SelectItem marks index as active, closes the overlay in compact mode and
// scrolls to anchor in either mode. index must be a valid entry index.
func (c *Controller) SelectItem(index int, anchor string) {
	c.selected = index
	if c.compact {
		c.overlayOpen = false
	}
	if c.scroller != nil {
		c.scroller.ScrollTo(anchor)
	}
}

// OnOutsideInteraction closes an open overlay. The caller must only forward
// interactions that originate outside the overlay region.
func (c *Controller) OnOutsideInteraction() {
	if c.compact && c.overlayOpen {
		c.overlayOpen = false
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return State{
		Compact:     c.compact,
		OverlayOpen: c.compact && c.overlayOpen,
		Selected:    c.selected,
	}
}

// Entries returns a copy of the fixed entry list.
func (c *Controller) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Breakpoint returns the compact threshold in logical pixels.
func (c *Controller) Breakpoint() int {
	return c.breakpoint
}

// Close stops listening for resizes. It is idempotent.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
