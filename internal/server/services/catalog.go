package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/repomanager"
)

// CategoryService manages the category catalog. Callers gate mutations on
// the ADMIN role.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrValidation
	}
	id, err := s.repomanager.Categories(s.db).Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: name}, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrValidation
	}
	c := &models.Category{ID: id, Name: name}
	if err := s.repomanager.Categories(s.db).Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Categories(s.db).Delete(ctx, id)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.repomanager.Categories(s.db).Get(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

// CheckoutService exposes a user's order history.
type CheckoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager) *CheckoutService {
	return &CheckoutService{db: db, repomanager: m}
}

// ListForUser returns the checkouts of the account behind p, newest first.
func (s *CheckoutService) ListForUser(ctx context.Context, p auth.Principal) ([]models.Checkout, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, common.NormalizeEmail(p.Email))
	if err != nil {
		return nil, err
	}
	return s.repomanager.Checkouts(s.db).ListByUserID(ctx, user.ID)
}
