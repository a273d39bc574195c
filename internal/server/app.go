// Package server wires the account service together: storage, token
// issuing, revocation, and the gRPC and REST transports.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/shouxkream/internal/logging"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/config"
	"github.com/dmitrijs2005/shouxkream/internal/server/httpapi"
	"github.com/dmitrijs2005/shouxkream/internal/server/observability"
	"github.com/dmitrijs2005/shouxkream/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shouxkream/internal/server/revocation"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/shouxkream/internal/server/grpc"
)

// denylist is what both the services and the authenticator need from the
// revocation store.
type denylist interface {
	services.Denylist
	auth.RevocationChecker
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	closers    []io.Closer
	grpcServer *gs.GRPCServer
	httpServer *httpapi.HTTPServer
}

// NewApp opens the database, applies migrations and builds both transports.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel, "shouxkream-server")

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var (
		dl      denylist
		closers = []io.Closer{db}
	)
	if c.RedisAddr != "" {
		client, err := revocation.Connect(ctx, c.RedisAddr)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		closers = append(closers, client)
		dl = revocation.NewRedisDenylist(client, "")
	} else {
		logger.Warn(ctx, "redis address not set, using in-process token denylist")
		dl = revocation.NewMemory()
	}

	app := newApp(c, logger, db, rm, dl)
	app.closers = closers
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager, dl denylist) *App {
	tokens := auth.NewTokenIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)
	hasher := auth.NewPasswordHasher(c.BcryptCost)
	authn := auth.NewAuthenticator(tokens, dl)

	users := services.NewUserService(db, rm, tokens, hasher, dl, logger)
	categories := services.NewCategoryService(db, rm)
	checkouts := services.NewCheckoutService(db, rm)

	metrics := observability.NewMetrics()

	router := httpapi.NewRouter(httpapi.Deps{
		Users:      users,
		Categories: categories,
		Checkouts:  checkouts,
		Authn:      authn,
		Metrics:    metrics,
		Health:     db,
		Logger:     logger,
	})

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, users, categories, authn, metrics),
		httpServer: httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, router),
	}
}

// Run serves both transports until ctx is cancelled, a termination signal
// arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpcServer.Run(ctx) })
	g.Go(func() error { return app.httpServer.Run(ctx) })

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}

// Close releases the database and the Redis client.
func (app *App) Close() error {
	var first error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
