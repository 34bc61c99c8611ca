package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/gogoz/internal/config"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/handlers"
	"github.com/nfrund/gogoz/internal/middleware"
	"github.com/nfrund/gogoz/internal/module"
	"github.com/nfrund/gogoz/internal/pubsub"
	"github.com/nfrund/gogoz/internal/registry"
	"github.com/nfrund/gogoz/internal/rendering"
	"github.com/spf13/afero"
)

// StaticPrefix is where the embedded assets are served; images live under
// StaticPrefix + "/img".
const StaticPrefix = "/static"

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	store          *content.Store
	watcher        *content.Watcher
	bus            *pubsub.WatermillBridge
	tracingCleanup func()
	modules        []module.Module
}

// New creates a new Server instance: content is loaded, the event bus is
// started and every module in AppModules is registered.
func New(ctx context.Context, cfg config.Provider) (*Server, error) {
	site, loader, err := loadContent(cfg.GetContentFile())
	if err != nil {
		return nil, err
	}
	store := content.NewStore(site)

	tracer, cleanup, err := pubsub.SetupOTel(ctx, pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	bus := pubsub.NewWatermillBridgeWithTracer(tracer)

	e := echo.New()
	e.HideBanner = true
	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Configure and use session middleware
	cookies := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookies))
	e.Use(middleware.Visitor)

	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentStoreKey, store)
	registry.Set(reg, registry.AssetsKey, content.NewAssets(StaticPrefix+"/img"))
	registry.Set[pubsub.Publisher](reg, registry.PublisherKey, bus)
	registry.Set[pubsub.Subscriber](reg, registry.SubscriberKey, bus)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)

	s := &Server{
		E:              e,
		Cfg:            cfg,
		Registry:       reg,
		store:          store,
		bus:            bus,
		tracingCleanup: cleanup,
		modules:        AppModules(),
	}

	if cfg.GetContentWatch() && cfg.GetContentFile() != "" {
		s.watcher, err = content.NewWatcher(loader, store, cfg.GetContentFile())
		if err != nil {
			return nil, fmt.Errorf("failed to watch content: %w", err)
		}
		s.watcher.OnReload(func(site *content.Site) {
			slog.Info("Content reloaded; new sessions use it", "testimonials", len(site.Testimonials.Items))
		})
	}

	for _, m := range s.modules {
		if err := m.Register(reg); err != nil {
			return nil, fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
		slog.Debug("Module registered", "module", m.Name())
	}
	return s, nil
}

// loadContent reads the content file from disk, or the embedded copy when
// path is empty.
func loadContent(path string) (*content.Site, *content.Loader, error) {
	loader := content.NewLoader(afero.NewOsFs())
	if path == "" {
		site, err := loader.Parse(content.EmbeddedBytes())
		return site, loader, err
	}
	site, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Loaded content", "path", path)
	return site, loader, nil
}

// Store returns the content store, useful for testing.
func (s *Server) Store() *content.Store {
	return s.store
}
