package content

import (
	"path"
	"strings"
	"sync/atomic"
)

// Store holds the current content snapshot. Readers always see a complete
// Site; a reload swaps the pointer atomically.
type Store struct {
	site atomic.Pointer[Site]
}

// NewStore creates a store seeded with site.
func NewStore(site *Site) *Store {
	s := &Store{}
	s.site.Store(site)
	return s
}

// Current returns the active snapshot. Callers must not mutate it.
func (s *Store) Current() *Site {
	return s.site.Load()
}

// Replace installs a new snapshot.
func (s *Store) Replace(site *Site) {
	s.site.Store(site)
}

// Assets resolves opaque image references to public URLs.
type Assets struct {
	Prefix string
}

// NewAssets creates an asset resolver rooted at prefix, e.g. "/static/img".
func NewAssets(prefix string) Assets {
	return Assets{Prefix: strings.TrimSuffix(prefix, "/")}
}

// URL returns the public URL of ref. Absolute URLs pass through unchanged.
func (a Assets) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	return a.Prefix + path.Clean("/"+ref)
}
