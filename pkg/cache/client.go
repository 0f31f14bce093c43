package cache

import (
	"strings"

	"github.com/seclib/tlsresume/internal/log"
	"github.com/seclib/tlsresume/pkg/session"
)

// endpointKey identifies a remote peer. Hostnames compare case-insensitively,
// so the host is lowercased before it is used as a key.
type endpointKey struct {
	host string
	port int
}

func endpointOf(host string, port int) (endpointKey, bool) {
	if host == "" || port == session.PortUnknown {
		return endpointKey{}, false
	}
	return endpointKey{host: strings.ToLower(host), port: port}, true
}

// ClientCache remembers negotiated client-side sessions by remote endpoint so
// that a later connection to the same peer can request an abbreviated
// handshake. At most one session is cached per endpoint; a session negotiated
// with a different protocol or cipher suite to the same peer is not retained
// alongside it.
type ClientCache struct {
	*cache[endpointKey]
}

// NewClientCache returns an empty ClientCache. All methods are safe for
// concurrent use.
func NewClientCache() *ClientCache {
	return &ClientCache{
		cache: newCache(func(s session.Session) (endpointKey, bool) {
			return endpointOf(s.PeerHost(), s.PeerPort())
		}),
	}
}

// Resume offers hs the cached session for its peer endpoint, if one exists,
// is still valid, and matches the handshake's enabled protocols and cipher
// suites. When no such session exists, Resume returns nil without touching
// hs, and the attempt proceeds with a full handshake.
//
// A cached session found to be invalid is evicted before Resume returns. A
// session that fails the protocol or cipher-suite check is left in place: it
// may match a future attempt configured differently.
//
// Resume returns a non-nil error only when the handshake rejects the
// proposed session, wrapped as *AttachError. An eviction performed earlier
// in the same call is not rolled back.
func (c *ClientCache) Resume(hs session.Handshake) error {
	key, ok := endpointOf(hs.PeerHost(), hs.PeerPort())
	if !ok {
		return nil
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	s, ok := c.sessions[key]
	if !ok {
		return nil
	}
	if !s.IsValid() {
		c.evictLocked(key)
		log.Debug("cache: dropped invalid session for %s:%d", key.host, key.port)
		return nil
	}
	if !contains(hs.EnabledProtocols(), s.Protocol()) ||
		!contains(hs.EnabledCipherSuites(), s.CipherSuite()) {
		return nil
	}
	if err := hs.SetResumptionSession(s); err != nil {
		return &AttachError{Err: err}
	}
	log.Debug("cache: offered session %s to %s:%d", s.ID(), key.host, key.port)
	return nil
}

func contains(set []string, want string) bool {
	for _, v := range set {
		if v == want {
			return true
		}
	}
	return false
}
