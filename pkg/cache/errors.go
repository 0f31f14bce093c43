package cache

// AttachError wraps a failure reported by the handshake context when the
// cache proposed a session for resumption. The cache's own decisions never
// produce errors; an AttachError always originates in the engine layer.
type AttachError struct {
	Err error
}

func (e *AttachError) Error() string {
	return "cache: attach resumption session: " + e.Err.Error()
}

func (e *AttachError) Unwrap() error {
	return e.Err
}
