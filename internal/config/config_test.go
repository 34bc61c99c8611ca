package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ADDR", "CONTENT_FILE", "CONTENT_WATCH", "DEFAULT_VIEWPORT_WIDTH",
		"NAV_BREAKPOINT", "TESTIMONIAL_INTERVAL", "SESSION_TTL", "LIVE_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SESSION_SECRET", "secret")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.GetAppAddr())
	assert.Empty(t, cfg.GetContentFile())
	assert.False(t, cfg.GetContentWatch())
	assert.Equal(t, 1024, cfg.GetDefaultViewportWidth())
	assert.Equal(t, 768, cfg.GetNavBreakpoint())
	assert.Equal(t, 5*time.Second, cfg.GetTestimonialInterval())
	assert.Equal(t, 30*time.Minute, cfg.GetSessionTTL())
	assert.Equal(t, "secret", cfg.GetSessionSecret())
	assert.Equal(t, 20.0, cfg.GetLiveRateLimit())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("CONTENT_FILE", "/srv/site.yaml")
	t.Setenv("CONTENT_WATCH", "true")
	t.Setenv("DEFAULT_VIEWPORT_WIDTH", "390")
	t.Setenv("NAV_BREAKPOINT", "900")
	t.Setenv("TESTIMONIAL_INTERVAL", "8s")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LIVE_RATE_LIMIT", "2.5")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.AppAddr)
	assert.Equal(t, "/srv/site.yaml", cfg.ContentFile)
	assert.True(t, cfg.ContentWatch)
	assert.Equal(t, 390, cfg.DefaultViewportWidth)
	assert.Equal(t, 900, cfg.NavBreakpoint)
	assert.Equal(t, 8*time.Second, cfg.TestimonialInterval)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 2.5, cfg.LiveRateLimit)
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DEFAULT_VIEWPORT_WIDTH", "wide")
	t.Setenv("NAV_BREAKPOINT", "-1")
	t.Setenv("TESTIMONIAL_INTERVAL", "soon")
	t.Setenv("CONTENT_WATCH", "maybe")
	t.Setenv("LIVE_RATE_LIMIT", "0")
	t.Setenv("SESSION_SECRET", "")

	cfg := FromEnv()
	assert.Equal(t, DefaultViewportWidth, cfg.DefaultViewportWidth)
	assert.Equal(t, DefaultBreakpoint, cfg.NavBreakpoint)
	assert.Equal(t, DefaultInterval, cfg.TestimonialInterval)
	assert.False(t, cfg.ContentWatch)
	assert.Equal(t, float64(DefaultLiveRateLimit), cfg.LiveRateLimit)
	assert.NotEmpty(t, cfg.SessionSecret)
}
