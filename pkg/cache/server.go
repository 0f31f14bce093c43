package cache

import (
	"github.com/seclib/tlsresume/internal/log"
	"github.com/seclib/tlsresume/pkg/session"
)

// ServerCache remembers server-side sessions by their identifier so that an
// ID offered by a resuming client can be matched to stored session state.
// Sessions with an empty identifier are not admitted; an empty ID cannot
// name a session on the wire.
type ServerCache struct {
	*cache[session.ID]
}

// NewServerCache returns an empty ServerCache. All methods are safe for
// concurrent use.
func NewServerCache() *ServerCache {
	return &ServerCache{
		cache: newCache(func(s session.Session) (session.ID, bool) {
			id := s.ID()
			if id.Len() == 0 {
				return session.ID{}, false
			}
			return id, true
		}),
	}
}

// Lookup returns the session stored under id. An entry found to be invalid
// is evicted and reported as absent.
func (c *ServerCache) Lookup(id session.ID) (session.Session, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	s, ok := c.sessions[id]
	if !ok {
		return nil, false
	}
	if !s.IsValid() {
		c.evictLocked(id)
		log.Debug("cache: dropped invalid session %s", id)
		return nil, false
	}
	return s, true
}
