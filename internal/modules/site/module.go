// Package site is the module serving the single marketing page and the
// live sessions behind its navigation and testimonial carousel.
package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/internal/handlers"
	"github.com/nfrund/gogoz/internal/hub"
	"github.com/nfrund/gogoz/internal/live"
	"github.com/nfrund/gogoz/internal/middleware"
	"github.com/nfrund/gogoz/internal/module"
	"github.com/nfrund/gogoz/internal/registry"
)

const (
	ManagerKey registry.Key[*live.Manager] = "site.live_manager"
	HubKey     registry.Key[*hub.Hub]      = "site.hub"

	reapInterval = time.Minute
)

// Module implements the module.Module interface.
type Module struct {
	module.BaseModule

	manager *live.Manager
	hub     *hub.Hub
}

// New creates a new instance of the site module.
func New() *Module {
	return &Module{}
}

// Name returns the unique name for the module.
func (m *Module) Name() string {
	return "site"
}

// Register creates the live session manager and the push hub.
func (m *Module) Register(reg *registry.Registry) error {
	cfg := reg.Config()
	store := registry.MustGet(reg, registry.ContentStoreKey)
	publisher := registry.MustGet(reg, registry.PublisherKey)

	m.manager = live.NewManager(store, publisher, live.Settings{
		Breakpoint: cfg.GetNavBreakpoint(),
		Interval:   cfg.GetTestimonialInterval(),
	}, cfg.GetSessionTTL())
	m.hub = hub.NewHub()
	m.manager.OnClose(m.hub.DropSession)

	registry.Set(reg, ManagerKey, m.manager)
	registry.Set(reg, HubKey, m.hub)
	return nil
}

// Boot starts the background loops and registers the routes.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	assets := registry.MustGet(reg, registry.AssetsKey)
	renderer := registry.MustGet(reg, registry.RendererKey)
	sub := registry.MustGet(reg, registry.SubscriberKey)

	go m.hub.Run(ctx)
	go m.manager.Run(ctx, reapInterval)

	pusher := handlers.NewRotationPusher(m.manager, m.hub, renderer, assets)
	if err := pusher.Start(ctx, sub); err != nil {
		return err
	}

	slog.Info("Booting site module: setting up routes...")
	home := handlers.NewHomeHandler(m.manager, assets, cfg.GetDefaultViewportWidth())
	router.GET("/", home.HomeGet)

	liveHandler := handlers.NewLiveHandler(m.manager, m.hub, assets)
	liveHandler.Register(router.Group("/live/:sid", middleware.RateLimiter(cfg.GetLiveRateLimit())))
	return nil
}

// Shutdown unmounts every live session.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.manager != nil {
		m.manager.Shutdown()
	}
	return nil
}
