// Package module defines the lifecycle every application feature follows:
// register services, boot routes and background loops, shut down.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gogoz/internal/registry"
)

// Module is a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register creates the module's services and publishes them in the
	// registry. All modules register before any boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts background loops that run
	// until ctx is cancelled.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases what Boot started. The server calls it in reverse
	// registration order.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for modules to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
