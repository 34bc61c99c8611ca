package live

import "github.com/nfrund/gogoz/internal/pubsub"

// RotatedEvent is published whenever an automatic tick advances a session's
// testimonials.
type RotatedEvent struct {
	Previous      int  `json:"previous"`
	Index         int  `json:"index"`
	AutoAdvancing bool `json:"auto_advancing"`
}

// TopicRotated carries RotatedEvent payloads keyed by session ID.
var TopicRotated = pubsub.NewEvent[RotatedEvent]("carousel.rotated", "Automatic testimonial advance in a live session")
