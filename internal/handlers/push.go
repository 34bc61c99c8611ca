package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/hub"
	"github.com/nfrund/gogoz/internal/live"
	"github.com/nfrund/gogoz/internal/pubsub"
	"github.com/nfrund/gogoz/internal/rendering"
	"github.com/nfrund/gogoz/web/src/templates/sections"
)

// RotationPusher turns rotation events into out-of-band carousel fragments
// and hands them to the hub for the session's websocket clients.
type RotationPusher struct {
	manager  *live.Manager
	hub      *hub.Hub
	renderer rendering.Renderer
	assets   content.Assets
}

// NewRotationPusher creates a new RotationPusher.
func NewRotationPusher(manager *live.Manager, h *hub.Hub, renderer rendering.Renderer, assets content.Assets) *RotationPusher {
	return &RotationPusher{manager: manager, hub: h, renderer: renderer, assets: assets}
}

// Start subscribes to rotation events until ctx is cancelled.
func (p *RotationPusher) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, live.TopicRotated, p.handle)
}

func (p *RotationPusher) handle(ctx context.Context, sessionID string, ev live.RotatedEvent) error {
	sess, err := p.manager.Get(sessionID)
	if err != nil {
		// Unmounted between the tick and delivery.
		return nil
	}

	items := sess.Site().Testimonials.Items
	if ev.Index < 0 || ev.Index >= len(items) {
		return fmt.Errorf("rotation index %d outside %d testimonials", ev.Index, len(items))
	}

	fragment, err := p.renderer.RenderComponent(ctx, sections.Carousel(sections.CarouselView{
		SessionID:     sessionID,
		Items:         items,
		Index:         ev.Index,
		Previous:      ev.Previous,
		AutoAdvancing: ev.AutoAdvancing,
		Assets:        p.assets,
		OOB:           true,
	}))
	if err != nil {
		return err
	}

	if err := p.hub.Send(ctx, sessionID, fragment); err != nil && !errors.Is(err, hub.ErrStopped) {
		return err
	}
	return nil
}
