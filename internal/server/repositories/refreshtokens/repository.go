// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores token and fills in its generated ID.
	Create(ctx context.Context, token *models.RefreshToken) error

	// FindByJTI returns the token with the given jti, or common.ErrorNotFound.
	FindByJTI(ctx context.Context, jti string) (*models.RefreshToken, error)

	// DeleteByJTI removes one token. A missing jti yields common.ErrorNotFound
	// so that concurrent rotations of the same token cannot both succeed.
	DeleteByJTI(ctx context.Context, jti string) error

	// DeleteByEmail removes every token issued to email and reports how many went.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
