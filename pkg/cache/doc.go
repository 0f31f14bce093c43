// Package cache allows a TLS engine to resume previously negotiated sessions.
//
// When a client connects to a peer for the first time, the protocol requires
// a full handshake. Remembering the negotiated session in a [ClientCache]
// allows a later connection to the same peer to request an abbreviated
// handshake instead. If the cached session has since become invalid, the
// attempt simply falls back to a full handshake; clients therefore benefit
// from the cache without incurring a penalty when an entry is stale.
//
// A ClientCache stores at most one session per remote endpoint. The engine
// layer reports new sessions through OnSessionCreated and invalidated ones
// through OnSessionRemoved; a connection attempt asks for a compatible prior
// session through Resume. A [ServerCache] is the server-side counterpart,
// keyed by session identifier rather than endpoint, so that an ID offered by
// a resuming client can be matched to stored state.
//
// Caches never own the sessions they store. The engine layer controls a
// session's lifetime and validity; a cache holds references purely for
// lookup and drops entries lazily when it discovers they have gone stale.
// All cache methods are safe for concurrent use.
package cache
