// Command gdpr-admin serves the GDPR admin pages: cookie banner settings
// and the data requests queue.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/gdpr/internal/config"
	"github.com/dmitrymomot/gdpr/internal/gdpr"
	"github.com/dmitrymomot/gdpr/internal/handlers"
	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/internal/repository"
	"github.com/dmitrymomot/gdpr/internal/web"
	"github.com/dmitrymomot/gdpr/middlewares"
	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/db"
	"github.com/dmitrymomot/gdpr/pkg/logger"
	"github.com/dmitrymomot/gdpr/pkg/nonce"
	"github.com/dmitrymomot/gdpr/pkg/options"
	"github.com/dmitrymomot/gdpr/pkg/redis"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("gdpr-admin stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).With("app", "gdpr-admin")
	slog.SetDefault(log)

	fallback, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("parse DEFAULT_LOCALE: %w", err)
	}
	bundle, err := locale.LoadEmbedded(fallback)
	if err != nil {
		return err
	}

	pool, err := db.Open(ctx, cfg.Database.ConnectionString,
		append(cfg.Database.Options(),
			db.WithMigrations(repository.Migrations),
			db.WithLogger(log),
		)...,
	)
	if err != nil {
		return err
	}

	shutdownHooks := []func(context.Context) error{db.Shutdown(pool)}
	readiness := []web.Option{web.WithReadinessCheck("postgres", db.Healthcheck(pool))}

	store, extra, err := openStore(ctx, cfg, pool)
	if err != nil {
		return errors.Join(err, closeAll(ctx, shutdownHooks))
	}
	for name, s := range extra {
		readiness = append(readiness, web.WithReadinessCheck(name, s.check))
		shutdownHooks = append(shutdownHooks, s.shutdown)
	}

	svc, err := gdpr.NewService(store,
		repository.NewUsers(pool),
		repository.NewContent(pool),
		gdpr.WithLogger(log),
	)
	if err != nil {
		return errors.Join(err, closeAll(ctx, shutdownHooks))
	}

	issuer, err := nonce.New(cfg.Secret, nonce.WithLifetime(cfg.NonceLifetime))
	if err != nil {
		return errors.Join(err, closeAll(ctx, shutdownHooks))
	}
	cookies := cookie.New(
		cookie.WithSecret(cfg.Secret),
		cookie.WithSecure(cfg.CookieSecure),
	)

	app := web.New(append(readiness,
		web.WithLogger(log),
		web.WithCookieManager(cookies),
		web.WithMiddleware(
			middlewares.Recover(middlewares.DefaultStackSize),
			middlewares.RequestID(),
			middlewares.Logging(),
			middlewares.AdminSession(),
			middlewares.Locale(bundle),
		),
		web.WithHandlers(
			handlers.NewSettingsHandler(svc, issuer),
			handlers.NewRequestsHandler(svc, issuer),
		),
		web.WithErrorHandler(handlers.ErrorHandler()),
	)...)

	log.Info("starting server",
		slog.String("addr", cfg.Address),
		slog.String("options_driver", cfg.OptionsDriver),
	)
	return app.Run(ctx, cfg.Address,
		web.WithShutdownTimeout(cfg.ShutdownTimeout),
		web.WithShutdownHook(append(shutdownHooks, logger.FlushSentry())...),
	)
}

// closeAll releases what run opened before the server started, newest first.
func closeAll(ctx context.Context, hooks []func(context.Context) error) error {
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type backend struct {
	check    func(context.Context) error
	shutdown func(context.Context) error
}

// openStore picks the options backend. Backends other than Postgres come
// with their own readiness check and shutdown hook.
func openStore(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (options.Store, map[string]backend, error) {
	switch cfg.OptionsDriver {
	case config.DriverMemory:
		return options.NewMemory(), nil, nil
	case config.DriverRedis:
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store := options.NewRedis(client, options.WithPrefix(cfg.OptionsPrefix))
		return store, map[string]backend{
			"redis": {check: redis.Healthcheck(client), shutdown: redis.Shutdown(client)},
		}, nil
	default:
		return options.NewPostgres(pool), nil, nil
	}
}
