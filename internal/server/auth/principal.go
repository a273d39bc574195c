package auth

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

// Principal is the authenticated identity behind a request. Transports build
// it from a verified access token and hand it to services explicitly.
type Principal struct {
	Email     string
	AccountID int64
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

func PrincipalFromClaims(c *Claims) Principal {
	p := Principal{
		Email:     c.Subject,
		AccountID: c.AccountID,
		Role:      c.Role,
		TokenID:   c.ID,
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

type ctxKey struct{}

// WithPrincipal stores p for the transport handler that follows the
// authentication step.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}
