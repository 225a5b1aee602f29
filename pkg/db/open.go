package db

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/gdpr/pkg/logger"
)

// Option configures Open.
type Option func(*options)

type options struct {
	migrations        fs.FS
	logger            *slog.Logger
	migrationsTable   string
	healthCheckPeriod time.Duration
	maxConnIdleTime   time.Duration
	maxConnLifetime   time.Duration
	retryInterval     time.Duration
	retryAttempts     int
	maxConns          int32
	minConns          int32
}

func defaultOptions() *options {
	return &options{
		logger:            logger.NewNope(),
		migrationsTable:   "schema_migrations",
		healthCheckPeriod: time.Minute,
		maxConnIdleTime:   10 * time.Minute,
		maxConnLifetime:   30 * time.Minute,
		retryInterval:     5 * time.Second,
		retryAttempts:     3,
		maxConns:          10,
		minConns:          2,
	}
}

// WithMigrations applies the goose migrations found at the root of fsys
// once the pool is connected.
func WithMigrations(fsys fs.FS) Option {
	return func(o *options) {
		o.migrations = fsys
	}
}

// WithMigrationsTable sets the goose version table name.
func WithMigrationsTable(name string) Option {
	return func(o *options) {
		if name != "" {
			o.migrationsTable = name
		}
	}
}

// WithLogger sets the logger used for connection and migration messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxConns sets the pool size.
func WithMaxConns(n int32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConns = n
		}
	}
}

// WithMinConns sets the number of connections kept open.
func WithMinConns(n int32) Option {
	return func(o *options) {
		if n >= 0 {
			o.minConns = n
		}
	}
}

// WithHealthCheckPeriod sets how often idle connections are checked.
func WithHealthCheckPeriod(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.healthCheckPeriod = d
		}
	}
}

// WithConnLifetime sets the idle and total lifetime of pooled connections.
func WithConnLifetime(idle, total time.Duration) Option {
	return func(o *options) {
		if idle > 0 {
			o.maxConnIdleTime = idle
		}
		if total > 0 {
			o.maxConnLifetime = total
		}
	}
}

// WithRetry configures startup connection retries.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// Open connects to PostgreSQL, retrying transient failures, and applies
// migrations when configured.
func Open(ctx context.Context, connString string, opts ...Option) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, ErrEmptyConnectionString
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	cfg.MaxConns = o.maxConns
	cfg.MinConns = min(o.minConns, o.maxConns)
	cfg.HealthCheckPeriod = o.healthCheckPeriod
	cfg.MaxConnIdleTime = o.maxConnIdleTime
	cfg.MaxConnLifetime = o.maxConnLifetime

	pool, err := connect(ctx, cfg, o.retryAttempts, o.retryInterval)
	if err != nil {
		return nil, err
	}

	if o.migrations != nil {
		if err := Migrate(ctx, pool, o.migrations, o.migrationsTable, o.logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return pool, nil
}

// MustOpen is Open that exits the process on failure.
func MustOpen(ctx context.Context, connString string, opts ...Option) *pgxpool.Pool {
	pool, err := Open(ctx, connString, opts...)
	if err != nil {
		slog.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	return pool
}

func connect(ctx context.Context, cfg *pgxpool.Config, attempts int, interval time.Duration) (*pgxpool.Pool, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			// Ping catches authentication and permission problems early.
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}

	return nil, errors.Join(ErrFailedToOpenDBConnection, lastErr)
}
