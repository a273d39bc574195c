// Package auth issues and verifies the signed tokens handed to clients and
// hashes account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind separates access tokens from refresh tokens so one can never be
// replayed as the other.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims is the payload of every token. Subject carries the account email.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64       `json:"accountId"`
	Role      models.Role `json:"role"`
	Kind      TokenKind   `json:"kind"`
}

// ExtraClaims are the account facts embedded next to subject and role.
type ExtraClaims struct {
	AccountID int64
}

// AuthToken is a freshly signed token with its identifier and expiry.
type AuthToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenIssuer signs HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	now        func() time.Time
}

func NewTokenIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     "shouxkream",
		now:        time.Now,
	}
}

// CreateAccessToken mints a short-lived bearer token.
func (i *TokenIssuer) CreateAccessToken(subject string, role models.Role, extra ExtraClaims) (*AuthToken, error) {
	return i.create(subject, role, extra, KindAccess, i.accessTTL)
}

// CreateRefreshToken mints a long-lived token whose ID is stored server-side.
func (i *TokenIssuer) CreateRefreshToken(subject string, role models.Role, extra ExtraClaims) (*AuthToken, error) {
	return i.create(subject, role, extra, KindRefresh, i.refreshTTL)
}

func (i *TokenIssuer) create(subject string, role models.Role, extra ExtraClaims, kind TokenKind, ttl time.Duration) (*AuthToken, error) {
	now := i.now()
	expiresAt := now.Add(ttl)
	id := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    i.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		AccountID: extra.AccountID,
		Role:      role,
		Kind:      kind,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("sign %s token: %w", kind, err)
	}

	return &AuthToken{Token: signed, ID: id, ExpiresAt: expiresAt}, nil
}

// Parse verifies signature, algorithm, expiry and kind. Expired tokens
// return common.ErrTokenExpired, anything else common.ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, common.ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithIssuer(i.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind || claims.Subject == "" || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
