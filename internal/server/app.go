// Package server wires configuration, storage, services and the HTTP API
// together and runs them until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/recipesearch/recipesearch/internal/cryptox"
	"github.com/recipesearch/recipesearch/internal/dbx"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/config"
	"github.com/recipesearch/recipesearch/internal/server/repositories/repomanager"
	"github.com/recipesearch/recipesearch/internal/server/repositories/sessions"
	"github.com/recipesearch/recipesearch/internal/server/rest"
	"github.com/recipesearch/recipesearch/internal/server/services"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	redis    *redis.Client
	sessions *services.SessionService
	server   *rest.HTTPServer
}

// NewApp opens the database, applies migrations and builds the HTTP server.
// Resources opened here are released by Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	db, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, c.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	m, err := repomanager.NewSQLRepositoryManager(c.DatabaseDriver)
	if err != nil {
		app.close()
		return nil, err
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		app.close()
		return nil, err
	}

	store, err := app.sessionStore(ctx, m)
	if err != nil {
		app.close()
		return nil, err
	}

	app.sessions = services.NewSessionService(store, []byte(c.SecretKey), c.SessionValidityDuration, logger)
	svc := rest.Services{
		Credentials: services.NewCredentialService(db, m, cryptox.DefaultArgon2Params, logger),
		Sessions:    app.sessions,
		Recipes:     services.NewRecipeService(db, m, logger),
		Favourites:  services.NewFavouriteService(db, m),
		Shares:      services.NewShareService(db, m),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, c.DatabaseDriver),
	)

	app.server = rest.NewHTTPServer(c, logger, svc, reg)
	return app, nil
}

func (app *App) sessionStore(ctx context.Context, m repomanager.RepositoryManager) (sessions.Repository, error) {
	switch app.config.SessionStore {
	case config.SessionStoreSQL:
		return m.Sessions(app.db), nil
	case config.SessionStoreRedis:
		app.redis = redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		return sessions.NewRedisRepository(app.redis), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", app.config.SessionStore)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP and purges expired sessions until ctx is cancelled or a
// termination signal arrives, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(gctx)
	})
	if app.redis == nil {
		g.Go(func() error {
			app.sessions.RunPurger(gctx, app.config.SessionPurgeInterval)
			return nil
		})
	}

	err := g.Wait()
	app.close()

	if err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

func (app *App) close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(context.Background(), "redis close error", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(context.Background(), "db close error", "error", err)
		}
	}
}
