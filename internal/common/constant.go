package common

const (
	// DefaultSessionCookieName is the cookie that carries the signed session token.
	DefaultSessionCookieName = "session"

	// RequestIDHeaderName is echoed on every response and used to correlate logs.
	RequestIDHeaderName = "X-Request-Id"

	// SessionIDSize is the number of random bytes behind an opaque session id.
	SessionIDSize = 32
)
