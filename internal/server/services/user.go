// Package services contains server-side business logic. This file implements
// UserService, which handles account lifecycle, login, and issuing/refreshing
// JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/dbx"
	"github.com/dmitrijs2005/shouxkream/internal/logging"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/repomanager"
)

// TokenIssuer mints and verifies signed tokens. *auth.TokenIssuer implements it.
type TokenIssuer interface {
	CreateAccessToken(subject string, role models.Role, extra auth.ExtraClaims) (*auth.AuthToken, error)
	CreateRefreshToken(subject string, role models.Role, extra auth.ExtraClaims) (*auth.AuthToken, error)
	Parse(token string, kind auth.TokenKind) (*auth.Claims, error)
}

// PasswordHasher is implemented by *auth.PasswordHasher.
type PasswordHasher interface {
	Encode(plain string) (string, error)
	Matches(plain, hash string) bool
}

// Denylist records revoked access-token ids until they would expire anyway.
type Denylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type SignupRequest struct {
	Email    string
	Password string
	Name     string
	Nickname string
}

type LoginRequest struct {
	Email    string
	Password string
}

// UpdateProfileRequest carries the current password for verification plus the
// new values. Empty fields keep what is stored.
type UpdateProfileRequest struct {
	Password    string
	NewPassword string
	Email       string
	Name        string
	Nickname    string
}

// UserService provides account operations:
//   - Signup, GetCurrentUser, UpdateProfile, DeleteUser, GetUserAddresses
//   - Login, Refresh and Logout for the token lifecycle
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	hasher      PasswordHasher
	denylist    Denylist
	logger      logging.Logger
	now         func() time.Time
}

// NewUserService wires the service. denylist may be nil, in which case
// Logout only drops refresh tokens.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, hasher PasswordHasher, denylist Denylist, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hasher:      hasher,
		denylist:    denylist,
		logger:      l.With("module", "user_service"),
		now:         time.Now,
	}
}

// Signup hashes the password and stores a new USER account. A taken email
// yields common.ErrConflict.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	email := common.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return 0, common.ErrValidation
	}

	hash, err := s.hasher.Encode(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		return 0, fmt.Errorf("signup: %w", err)
	}

	now := s.now().UTC()
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Nickname:     strings.TrimSpace(req.Nickname),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", id)
	return id, nil
}

// GetCurrentUser loads the account behind p. A token minted for an account
// that was deleted and re-created under the same email resolves to
// common.ErrorNotFound.
func (s *UserService) GetCurrentUser(ctx context.Context, p auth.Principal) (*models.User, error) {
	user, err := s.getByEmail(ctx, s.db, p.Email)
	if err != nil {
		return nil, err
	}
	if p.AccountID != 0 && p.AccountID != user.ID {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

// UpdateProfile verifies the current password and stores the new profile.
// The returned user is a fresh value; nothing is written on failure.
func (s *UserService) UpdateProfile(ctx context.Context, p auth.Principal, req UpdateProfileRequest) (*models.User, error) {
	current, err := s.GetCurrentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	if req.Password == "" || !s.hasher.Matches(req.Password, current.PasswordHash) {
		return nil, common.ErrInvalidPassword
	}

	upd := models.ProfileUpdate{
		Email:    common.NormalizeEmail(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Nickname: strings.TrimSpace(req.Nickname),
	}
	if req.NewPassword != "" {
		upd.PasswordHash, err = s.hasher.Encode(req.NewPassword)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
			}
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	updated := current.WithProfile(upd, s.now().UTC())

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Update(ctx, &updated); err != nil {
			return err
		}
		// Refresh tokens are keyed by email; a rename orphans them.
		if updated.Email != current.Email {
			if _, err := s.repomanager.RefreshTokens(tx).DeleteByEmail(ctx, current.Email); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteUser removes the account behind p together with its refresh tokens.
func (s *UserService) DeleteUser(ctx context.Context, p auth.Principal) error {
	user, err := s.GetCurrentUser(ctx, p)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.RefreshTokens(tx).DeleteByEmail(ctx, user.Email); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.revokeAccess(ctx, p)
	s.logger.Info(ctx, "user deleted", "user_id", user.ID)
	return nil
}

// Login verifies credentials and returns a new TokenPair. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, common.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Matches(req.Password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, s.db, user)
}

// GetUserAddresses returns the stored addresses of the account with email.
func (s *UserService) GetUserAddresses(ctx context.Context, email string) ([]AddressDTO, error) {
	user, err := s.getByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	return ToAddressDTOs(user.Addresses), nil
}

// Refresh validates a refresh token, rotates it transactionally, and returns
// a fresh TokenPair. Expired tokens yield common.ErrRefreshTokenExpired.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.KindRefresh)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrRefreshTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*TokenPair, error) {
		repo := s.repomanager.RefreshTokens(tx)

		stored, err := repo.FindByJTI(ctx, claims.ID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrInvalidToken
			}
			return nil, err
		}
		if stored.Token != refreshToken || stored.Email != claims.Subject {
			return nil, common.ErrInvalidToken
		}
		if stored.Expired(s.now()) {
			return nil, common.ErrRefreshTokenExpired
		}

		if err := repo.DeleteByJTI(ctx, stored.JTI); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrInvalidToken
			}
			return nil, err
		}

		user, err := s.getByEmail(ctx, tx, stored.Email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrInvalidToken
			}
			return nil, err
		}

		return s.issueTokenPair(ctx, tx, user)
	})
}

// Logout drops every refresh token of p and denylists its access token.
func (s *UserService) Logout(ctx context.Context, p auth.Principal) error {
	n, err := s.repomanager.RefreshTokens(s.db).DeleteByEmail(ctx, p.Email)
	if err != nil {
		return err
	}

	if s.denylist != nil && p.TokenID != "" {
		if err := s.denylist.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
			return fmt.Errorf("revoke access token: %w", err)
		}
	}

	s.logger.Info(ctx, "logged out", "email", p.Email, "refresh_tokens", n)
	return nil
}

func (s *UserService) getByEmail(ctx context.Context, db dbx.DBTX, email string) (*models.User, error) {
	user, err := s.repomanager.Users(db).GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) revokeAccess(ctx context.Context, p auth.Principal) {
	if s.denylist == nil || p.TokenID == "" {
		return
	}
	if err := s.denylist.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
		s.logger.Warn(ctx, "could not revoke access token", "error", err)
	}
}

func (s *UserService) issueTokenPair(ctx context.Context, db dbx.DBTX, user *models.User) (*TokenPair, error) {
	extra := auth.ExtraClaims{AccountID: user.ID}

	access, err := s.tokens.CreateAccessToken(user.Email, user.Role, extra)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.CreateRefreshToken(user.Email, user.Role, extra)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	record := &models.RefreshToken{
		Token:     refresh.Token,
		Email:     user.Email,
		JTI:       refresh.ID,
		ExpiresAt: refresh.ExpiresAt,
	}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:      access.Token,
		RefreshToken:     refresh.Token,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}
