package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/live"
	"github.com/nfrund/gogoz/internal/middleware"
	"github.com/nfrund/gogoz/internal/view"
	"github.com/nfrund/gogoz/web/src/templates/layouts"
	"github.com/nfrund/gogoz/web/src/templates/pages"
)

// viewportHints are the client hint headers carrying the layout viewport
// width, newest first.
var viewportHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	manager      *live.Manager
	assets       content.Assets
	defaultWidth int
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(manager *live.Manager, assets content.Assets, defaultWidth int) *HomeHandler {
	return &HomeHandler{manager: manager, assets: assets, defaultWidth: defaultWidth}
}

// HomeGet mounts a live session for the page and renders it.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	width := ViewportWidth(c.Request(), h.defaultWidth)
	sess, err := h.manager.Mount(middleware.VisitorID(c), width)
	if err != nil {
		logger.Error("Failed to mount live session", "error", err)
		return err
	}

	var home pages.HomeView
	err = sess.Do(ctx, func(tx *live.Tx) error {
		home = pages.HomeView{
			SessionID:     tx.SessionID,
			Site:          tx.Site,
			Assets:        h.assets,
			Nav:           tx.Nav.State(),
			Index:         tx.Rotator.Index(),
			AutoAdvancing: tx.Rotator.AutoAdvancing(),
		}
		return nil
	})
	if err != nil {
		if uerr := h.manager.Unmount(sess.ID()); uerr != nil {
			logger.Warn("Failed to unmount live session", "session_id", sess.ID(), "error", uerr)
		}
		return err
	}
	logger.Debug("Rendering home page", "session_id", sess.ID(), "width", width)

	page := layouts.Base(
		layouts.Page{Lang: home.Site.Lang, SessionID: sess.ID()},
		view.AdaptGomponentToTempl(pages.Home(home)),
	)

	header := c.Response().Header()
	header.Set("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")
	header.Set("Cache-Control", "no-store")
	return c.Render(http.StatusOK, "", page)
}

// ViewportWidth reads the initial viewport width from the client hints,
// falling back to def.
func ViewportWidth(r *http.Request, def int) int {
	for _, name := range viewportHints {
		if v := r.Header.Get(name); v != "" {
			if w, err := strconv.Atoi(v); err == nil && w > 0 {
				return w
			}
		}
	}
	return def
}
