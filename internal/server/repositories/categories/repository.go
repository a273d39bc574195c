// Package categories stores the product category catalog.
package categories

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

type Repository interface {
	// Create inserts a category and returns its id. Duplicate names yield common.ErrConflict.
	Create(ctx context.Context, name string) (int64, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	// List returns every category ordered by id.
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
}
