// Package session defines the read-only view of TLS session state that the
// resumption caches in pkg/cache operate on, along with the identity value
// sessions are known by on the wire.
//
// The types here are contracts for the surrounding TLS engine layer. The
// engine owns session objects and decides when they become invalid; a cache
// only reads the fields exposed below and must tolerate a session turning
// invalid at any time.
package session

// PortUnknown marks a peer port that was never resolved. A session whose
// endpoint includes this sentinel cannot be cached for resumption.
const PortUnknown = -1

// Session is a read-only view of a negotiated TLS session.
//
// Implementations must be safe for concurrent use: caches read these fields
// from multiple connection-handling goroutines. The fields queried here are
// expected to be immutable after the handshake, with the exception of
// IsValid, which the engine may flip at any time.
type Session interface {
	// PeerHost returns the hostname of the remote peer the session was
	// negotiated with, or the empty string when unknown.
	PeerHost() string

	// PeerPort returns the remote peer's port, or PortUnknown.
	PeerPort() int

	// IsValid reports whether the engine still considers the session usable
	// for resumption.
	IsValid() bool

	// Protocol returns the negotiated protocol name, e.g. "TLSv1.3".
	Protocol() string

	// CipherSuite returns the negotiated cipher suite name.
	CipherSuite() string

	// ID returns the identity the session is known by.
	ID() ID
}

// Handshake describes an outbound connection attempt that is about to
// negotiate, or is in the process of negotiating, a TLS session. A client
// cache reads the peer endpoint and the enabled parameter sets to decide
// whether a prior session can be offered, and attaches the chosen session
// through SetResumptionSession.
type Handshake interface {
	// PeerHost returns the hostname of the remote peer, or the empty string
	// when unknown.
	PeerHost() string

	// PeerPort returns the remote peer's port, or PortUnknown.
	PeerPort() int

	// EnabledProtocols returns the protocol names this attempt may negotiate.
	EnabledProtocols() []string

	// EnabledCipherSuites returns the cipher suite names this attempt may
	// negotiate.
	EnabledCipherSuites() []string

	// SetResumptionSession proposes a previously negotiated session for
	// resumption. The engine may reject the proposal, for example when its
	// internal state no longer matches the session.
	SetResumptionSession(Session) error
}
