package cache

import (
	"sync"

	"github.com/seclib/tlsresume/pkg/session"
)

// keyFunc derives the cache key for a session. It returns ok == false when
// the session lacks the fields the key is built from, in which case the
// session cannot be cached.
type keyFunc[K comparable] func(session.Session) (K, bool)

// cache stores at most one session per key. The lock serializes all access
// to the map, including the lazy-eviction paths in ClientCache.Resume and
// ServerCache.Lookup, so a session cannot be evicted by one goroutine while
// another is mid-evaluation of its compatibility.
//
// ClientCache and ServerCache are the two instantiations; they differ only
// in key type and in their lookup operations.
type cache[K comparable] struct {
	lock     sync.Mutex
	sessions map[K]session.Session
	keyOf    keyFunc[K]
}

func newCache[K comparable](keyOf keyFunc[K]) *cache[K] {
	return &cache[K]{
		sessions: make(map[K]session.Session),
		keyOf:    keyOf,
	}
}

// OnSessionCreated reports a newly negotiated session for possible caching.
// It returns false, without modifying the cache, when the session has no
// usable key or when an entry already exists for that key: the first cached
// session for a key is never replaced by a later one.
func (c *cache[K]) OnSessionCreated(s session.Session) bool {
	key, ok := c.keyOf(s)
	if !ok {
		return false
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, exists := c.sessions[key]; exists {
		return false
	}
	c.sessions[key] = s
	return true
}

// OnSessionRemoved reports that the engine has invalidated or evicted a
// session. Any entry under the session's key is removed; calling this for a
// session that was never admitted is a no-op.
func (c *cache[K]) OnSessionRemoved(s session.Session) {
	key, ok := c.keyOf(s)
	if !ok {
		return
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.sessions, key)
}

// Len returns the number of cached sessions.
func (c *cache[K]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.sessions)
}

// evictLocked removes the entry under key. The caller must hold c.lock.
func (c *cache[K]) evictLocked(key K) {
	delete(c.sessions, key)
}
