// Package pgerr classifies PostgreSQL driver errors for the repositories.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is SQLSTATE 23505.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err (or anything it wraps) is a
// unique-constraint violation raised by PostgreSQL.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}
