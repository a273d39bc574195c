// Package revocation tracks access tokens that were revoked before their
// natural expiry (logout, account deletion).
package revocation

import (
	"context"
	"time"
)

// Denylist stores revoked token ids until the moment they would have
// expired anyway.
type Denylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
