package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shouxkream/internal/common"
)

// RevocationChecker reports whether an access token id was revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Authenticator turns a bearer access token into a Principal.
type Authenticator struct {
	tokens  *TokenIssuer
	revoked RevocationChecker
}

// NewAuthenticator builds an Authenticator. revoked may be nil.
func NewAuthenticator(tokens *TokenIssuer, revoked RevocationChecker) *Authenticator {
	return &Authenticator{tokens: tokens, revoked: revoked}
}

// Authenticate verifies token as an access token. It fails with
// common.ErrInvalidToken, common.ErrTokenExpired or common.ErrTokenRevoked.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, common.ErrInvalidToken
	}

	claims, err := a.tokens.Parse(token, KindAccess)
	if err != nil {
		return Principal{}, err
	}

	if a.revoked != nil {
		revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Principal{}, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return Principal{}, common.ErrTokenRevoked
		}
	}

	return PrincipalFromClaims(claims), nil
}

// ExtractBearer returns the token of an "Authorization: Bearer <token>"
// header value, or "" when the scheme does not match.
func ExtractBearer(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
