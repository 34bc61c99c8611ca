package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/gogoz/internal/carousel"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/nfrund/gogoz/internal/nav"
	"github.com/nfrund/gogoz/internal/pubsub"
)

// DefaultTTL is how long a session may stay idle before it is reaped.
const DefaultTTL = 30 * time.Minute

// Manager owns every mounted session.
type Manager struct {
	store     *content.Store
	publisher pubsub.Publisher
	settings  Settings
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	onClose  []func(sessionID string)
}

// NewManager creates a manager mounting sessions from the content in store.
func NewManager(store *content.Store, publisher pubsub.Publisher, settings Settings, ttl time.Duration) *Manager {
	if settings.Breakpoint <= 0 {
		settings.Breakpoint = nav.DefaultBreakpoint
	}
	if settings.Interval <= 0 {
		settings.Interval = carousel.DefaultInterval
	}
	if settings.Clock == nil {
		settings.Clock = carousel.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:     store,
		publisher: publisher,
		settings:  settings,
		ttl:       ttl,
		sessions:  make(map[string]*Session),
	}
}

// OnClose registers a hook run after a session has been unmounted.
func (m *Manager) OnClose(fn func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onClose = append(m.onClose, fn)
}

// Mount creates a session for visitorID with the given initial viewport width.
func (m *Manager) Mount(visitorID string, width int) (*Session, error) {
	id := uuid.NewString()
	s, err := newSession(id, visitorID, m.store.Current(), width, m.publisher, m.settings)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	total := len(m.sessions)
	m.mu.Unlock()

	slog.Debug("Live session mounted", "session_id", id, "width", width, "total_sessions", total)
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Authorize returns the session with id if it was mounted by visitorID.
func (m *Manager) Authorize(id, visitorID string) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if s.visitorID != visitorID {
		return nil, ErrForbidden
	}
	return s, nil
}

// Unmount closes and forgets the session with id.
func (m *Manager) Unmount(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	hooks := append([]func(string){}, m.onClose...)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	for _, hook := range hooks {
		hook(id)
	}
	return nil
}

// Len returns the number of mounted sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap unmounts every session idle since before now minus the TTL and
// returns how many were removed.
func (m *Manager) Reap(now time.Time) int {
	cutoff := now.Add(-m.ttl)

	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	removed := 0
	for _, id := range expired {
		if err := m.Unmount(id); err == nil {
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Reaped idle live sessions", "count", removed)
	}
	return removed
}

// Run reaps idle sessions every interval until ctx is cancelled, then
// unmounts everything that is left.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.Shutdown()
			return
		case now := <-ticker.C:
			m.Reap(now)
		}
	}
}

// Shutdown unmounts every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		_ = m.Unmount(id)
	}
}
