// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/gdpr/pkg/cookie"
	"github.com/dmitrymomot/gdpr/pkg/db"
	"github.com/dmitrymomot/gdpr/pkg/logger"
)

// Options storage drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var (
	ErrParse         = errors.New("config: failed to parse environment")
	ErrInvalidSecret = fmt.Errorf("config: APP_SECRET must be at least %d bytes", cookie.MinSecretLength)
	ErrUnknownDriver = errors.New("config: unknown OPTIONS_DRIVER")
	ErrMissingRedis  = errors.New("config: REDIS_URL is required for the redis driver")
	ErrMissingDSN    = errors.New("config: DATABASE_CONN_URL is required")
)

// Config is the full service configuration.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	Secret          string        `env:"APP_SECRET,required"`
	NonceLifetime   time.Duration `env:"NONCE_LIFETIME" envDefault:"24h"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"true"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	OptionsDriver   string        `env:"OPTIONS_DRIVER" envDefault:"postgres"`
	OptionsPrefix   string        `env:"OPTIONS_PREFIX" envDefault:"gdpr:options:"`
	RedisURL        string        `env:"REDIS_URL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Database db.Config
	Sentry   logger.SentryConfig
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	if len(c.Secret) < cookie.MinSecretLength {
		return ErrInvalidSecret
	}
	// Users and content always live in Postgres.
	if c.Database.ConnectionString == "" {
		return ErrMissingDSN
	}
	switch c.OptionsDriver {
	case DriverMemory, DriverPostgres:
	case DriverRedis:
		if c.RedisURL == "" {
			return ErrMissingRedis
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.OptionsDriver)
	}
	return nil
}
