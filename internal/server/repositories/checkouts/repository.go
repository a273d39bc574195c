// Package checkouts reads a user's order history.
package checkouts

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

type Repository interface {
	// ListByUserID returns the user's checkouts, newest first.
	ListByUserID(ctx context.Context, userID int64) ([]models.Checkout, error)
}
