package checkouts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shouxkream/internal/dbx"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Checkout, error) {
	query :=
		`SELECT id, user_id, recipient, phone, zipcode, address1, address2, request, total_price, status, created_at
		 FROM checkouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Checkout{}
	for rows.Next() {
		var c models.Checkout
		err := rows.Scan(&c.ID, &c.UserID, &c.Recipient, &c.Phone, &c.Zipcode,
			&c.Address1, &c.Address2, &c.Request, &c.TotalPrice, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}
