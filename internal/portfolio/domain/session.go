package domain

import "time"

// Session models a stored login session. Only the SHA-256 fingerprint of the
// opaque cookie token is persisted, never the token itself.
type Session struct {
	ID        string
	TokenHash string // base64url SHA-256 of the opaque token
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its absolute TTL at now.
// Expiry is absolute: validation never extends it.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
