package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr          = ":8080"
	DefaultViewportWidth = 1024
	DefaultBreakpoint    = 768
	DefaultInterval      = 5 * time.Second
	DefaultSessionTTL    = 30 * time.Minute
	DefaultLiveRateLimit = 20
)

// Provider exposes the application settings.
type Provider interface {
	GetAppAddr() string
	GetContentFile() string
	GetContentWatch() bool
	GetDefaultViewportWidth() int
	GetNavBreakpoint() int
	GetTestimonialInterval() time.Duration
	GetSessionTTL() time.Duration
	GetSessionSecret() string
	GetLiveRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr              string
	ContentFile          string
	ContentWatch         bool
	DefaultViewportWidth int
	NavBreakpoint        int
	TestimonialInterval  time.Duration
	SessionTTL           time.Duration
	SessionSecret        string
	LiveRateLimit        float64
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from environment variables only.
// Malformed values fall back to their defaults.
func FromEnv() *Config {
	cfg := &Config{
		AppAddr:              getString("APP_ADDR", DefaultAddr),
		ContentFile:          os.Getenv("CONTENT_FILE"),
		ContentWatch:         getBool("CONTENT_WATCH", false),
		DefaultViewportWidth: getInt("DEFAULT_VIEWPORT_WIDTH", DefaultViewportWidth),
		NavBreakpoint:        getInt("NAV_BREAKPOINT", DefaultBreakpoint),
		TestimonialInterval:  getDuration("TESTIMONIAL_INTERVAL", DefaultInterval),
		SessionTTL:           getDuration("SESSION_TTL", DefaultSessionTTL),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		LiveRateLimit:        getFloat("LIVE_RATE_LIMIT", DefaultLiveRateLimit),
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = "gogoz-insecure-development-secret"
	}
	return cfg
}

func (c *Config) GetAppAddr() string                    { return c.AppAddr }
func (c *Config) GetContentFile() string                { return c.ContentFile }
func (c *Config) GetContentWatch() bool                 { return c.ContentWatch }
func (c *Config) GetDefaultViewportWidth() int          { return c.DefaultViewportWidth }
func (c *Config) GetNavBreakpoint() int                 { return c.NavBreakpoint }
func (c *Config) GetTestimonialInterval() time.Duration { return c.TestimonialInterval }
func (c *Config) GetSessionTTL() time.Duration          { return c.SessionTTL }
func (c *Config) GetSessionSecret() string              { return c.SessionSecret }
func (c *Config) GetLiveRateLimit() float64             { return c.LiveRateLimit }

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("Invalid integer setting, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("Invalid number setting, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Invalid boolean setting, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration setting, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
