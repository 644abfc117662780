package models

import "time"

// Session is a server-side login session. ID is the opaque token embedded in
// the signed cookie.
type Session struct {
	ID        string
	UserID    int64
	UserName  string
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
