package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shouxkream/internal/dbx"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/categories"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/checkouts"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the pool or a
// transaction, so services decide the unit of work.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Categories(db dbx.DBTX) categories.Repository
	Checkouts(db dbx.DBTX) checkouts.Repository
}
