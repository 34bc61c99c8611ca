package registry

import (
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/pubsub"
	"github.com/nfrund/gogoz/internal/rendering"
)

// Service keys shared by the server and its modules. Using constants prevents typos.
const (
	ContentStoreKey Key[*content.Store]     = "content.store"
	AssetsKey       Key[content.Assets]     = "content.assets"
	PublisherKey    Key[pubsub.Publisher]   = "pubsub.publisher"
	SubscriberKey   Key[pubsub.Subscriber]  = "pubsub.subscriber"
	RendererKey     Key[rendering.Renderer] = "rendering.renderer"
)
