package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/internal/carousel"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/hub"
	"github.com/nfrund/gogoz/internal/live"
	"github.com/nfrund/gogoz/internal/middleware"
	"github.com/nfrund/gogoz/web/src/templates/sections"
)

const (
	// HeaderHXTrigger asks htmx to dispatch client events after the swap.
	HeaderHXTrigger = "HX-Trigger"
	// HeaderHXRefresh makes htmx reload the page.
	HeaderHXRefresh = "HX-Refresh"

	// ScrollEvent is the client event the page script turns into a smooth scroll.
	ScrollEvent = "gogoz:scroll"
)

// ErrUnknownEntry is returned when a selection names no navigation entry.
var ErrUnknownEntry = errors.New("unknown navigation entry")

// LiveHandler serves the actions of mounted pages. Navigation actions answer
// with the navigation fragment and testimonial actions with the carousel.
type LiveHandler struct {
	manager *live.Manager
	hub     *hub.Hub
	assets  content.Assets
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(manager *live.Manager, h *hub.Hub, assets content.Assets) *LiveHandler {
	return &LiveHandler{manager: manager, hub: h, assets: assets}
}

// session resolves the :sid path parameter for the current visitor.
func (h *LiveHandler) session(c echo.Context) (*live.Session, error) {
	return h.manager.Authorize(c.Param("sid"), middleware.VisitorID(c))
}

// NavResize applies a viewport width reported by the browser.
func (h *LiveHandler) NavResize(c echo.Context) error {
	var req ResizeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.navAction(c, func(tx *live.Tx) error {
		tx.Viewport.Resize(req.Width)
		return nil
	})
}

// NavToggle opens or closes the compact overlay.
func (h *LiveHandler) NavToggle(c echo.Context) error {
	return h.navAction(c, func(tx *live.Tx) error {
		tx.Nav.ToggleOverlay()
		return nil
	})
}

// NavSelect marks an entry as selected and scrolls to its anchor.
func (h *LiveHandler) NavSelect(c echo.Context) error {
	var req SelectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.navAction(c, func(tx *live.Tx) error {
		entries := tx.Nav.Entries()
		index := *req.Index
		if index >= len(entries) {
			return fmt.Errorf("%w: index %d of %d", ErrUnknownEntry, index, len(entries))
		}
		anchor := entries[index].Anchor
		if req.Anchor != "" && req.Anchor != anchor {
			return fmt.Errorf("%w: %s is not the anchor of entry %d", ErrUnknownEntry, req.Anchor, index)
		}
		tx.Nav.SelectItem(index, anchor)
		return nil
	})
}

// NavOutside closes the overlay after a click outside the navigation.
func (h *LiveHandler) NavOutside(c echo.Context) error {
	return h.navAction(c, func(tx *live.Tx) error {
		tx.Nav.OnOutsideInteraction()
		return nil
	})
}

func (h *LiveHandler) navAction(c echo.Context, fn func(*live.Tx) error) error {
	sess, err := h.session(c)
	if err != nil {
		return liveError(c, err)
	}

	var (
		v       sections.NavView
		scrolls []string
	)
	err = sess.Do(c.Request().Context(), func(tx *live.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		v = sections.NavView{
			SessionID: tx.SessionID,
			Brand:     tx.Site.Brand,
			Tagline:   tx.Site.Tagline,
			Entries:   tx.Nav.Entries(),
			State:     tx.Nav.State(),
		}
		scrolls = tx.Scrolls()
		return nil
	})
	if err != nil {
		return liveError(c, err)
	}

	if len(scrolls) > 0 {
		trigger, err := scrollTrigger(scrolls[len(scrolls)-1])
		if err != nil {
			return err
		}
		c.Response().Header().Set(HeaderHXTrigger, trigger)
	}
	return c.Render(http.StatusOK, "", sections.Navigation(v))
}

// scrollTrigger encodes the HX-Trigger value asking the page to scroll to anchor.
func scrollTrigger(anchor string) (string, error) {
	b, err := json.Marshal(map[string]map[string]string{
		ScrollEvent: {"anchor": anchor},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// TestimonialNext moves the carousel forward.
func (h *LiveHandler) TestimonialNext(c echo.Context) error {
	return h.carouselAction(c, func(tx *live.Tx) error {
		tx.Rotator.Next()
		return nil
	})
}

// TestimonialPrev moves the carousel backward.
func (h *LiveHandler) TestimonialPrev(c echo.Context) error {
	return h.carouselAction(c, func(tx *live.Tx) error {
		tx.Rotator.Previous()
		return nil
	})
}

// TestimonialGoTo jumps to the posted index.
func (h *LiveHandler) TestimonialGoTo(c echo.Context) error {
	var req GoToRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.carouselAction(c, func(tx *live.Tx) error {
		return tx.Rotator.GoTo(*req.Index)
	})
}

// TestimonialToggle pauses or resumes automatic advancing.
func (h *LiveHandler) TestimonialToggle(c echo.Context) error {
	return h.carouselAction(c, func(tx *live.Tx) error {
		tx.Rotator.TogglePlayback()
		return nil
	})
}

func (h *LiveHandler) carouselAction(c echo.Context, fn func(*live.Tx) error) error {
	sess, err := h.session(c)
	if err != nil {
		return liveError(c, err)
	}

	var v sections.CarouselView
	err = sess.Do(c.Request().Context(), func(tx *live.Tx) error {
		previous := tx.Rotator.Index()
		if err := fn(tx); err != nil {
			return err
		}
		v = sections.CarouselView{
			SessionID:     tx.SessionID,
			Items:         tx.Rotator.Entries(),
			Index:         tx.Rotator.Index(),
			Previous:      previous,
			AutoAdvancing: tx.Rotator.AutoAdvancing(),
			Assets:        h.assets,
		}
		return nil
	})
	if err != nil {
		return liveError(c, err)
	}
	return c.Render(http.StatusOK, "", sections.Carousel(v))
}

// Unmount tears the session down when the page goes away.
func (h *LiveHandler) Unmount(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return liveError(c, err)
	}
	if err := h.manager.Unmount(sess.ID()); err != nil {
		return liveError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// liveError maps live session and carousel errors to HTTP errors. A page
// whose session is gone is asked to reload, which mounts a new one.
func liveError(c echo.Context, err error) error {
	logger := middleware.FromContext(c.Request().Context())

	switch {
	case errors.Is(err, live.ErrSessionNotFound), errors.Is(err, live.ErrSessionClosed):
		c.Response().Header().Set(HeaderHXRefresh, "true")
		return echo.NewHTTPError(http.StatusNotFound, "Live session not found.")
	case errors.Is(err, live.ErrForbidden):
		logger.Warn("Visitor attempted to drive another visitor's session", "session_id", c.Param("sid"))
		return echo.NewHTTPError(http.StatusForbidden, "This session belongs to another visitor.")
	case errors.Is(err, carousel.ErrOutOfRange), errors.Is(err, ErrUnknownEntry):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Request cancelled.")
	default:
		return err
	}
}

// Register mounts the live routes on g, which is expected to carry the
// :sid path parameter.
func (h *LiveHandler) Register(g *echo.Group) {
	g.POST("/nav/resize", h.NavResize)
	g.POST("/nav/toggle", h.NavToggle)
	g.POST("/nav/select", h.NavSelect)
	g.POST("/nav/outside", h.NavOutside)

	g.POST("/testimonials/next", h.TestimonialNext)
	g.POST("/testimonials/prev", h.TestimonialPrev)
	g.POST("/testimonials/goto", h.TestimonialGoTo)
	g.POST("/testimonials/toggle", h.TestimonialToggle)

	g.GET("/ws", h.ServeWS)
	g.DELETE("", h.Unmount)
}
