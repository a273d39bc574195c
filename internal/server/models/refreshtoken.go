package models

import "time"

// RefreshToken is one issued refresh credential, keyed by its jti.
type RefreshToken struct {
	ID        int64
	Token     string
	Email     string
	JTI       string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
