// Package users declares the credential store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

// Repository persists user accounts and their addresses.
type Repository interface {
	// Create inserts user and returns its new id. A taken email yields common.ErrConflict.
	Create(ctx context.Context, user *models.User) (int64, error)

	// GetByEmail loads a user with addresses, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID loads a user with addresses, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Update overwrites the mutable columns of an existing user.
	Update(ctx context.Context, user *models.User) error

	// Delete removes the user (addresses cascade). Missing ids yield common.ErrorNotFound.
	Delete(ctx context.Context, id int64) error

	// ListAddresses returns the user's addresses in their stored order.
	ListAddresses(ctx context.Context, userID int64) ([]models.Address, error)
}
