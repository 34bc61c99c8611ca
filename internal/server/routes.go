package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/web"
)

// RegisterRoutes sets up the shared routes and boots every module, which
// registers its own routes and starts its background work.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.StaticFS(StaticPrefix, echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}
