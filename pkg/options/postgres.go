package options

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores options in the "options" table:
//
//	CREATE TABLE options (
//	    name       TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Postgres struct {
	db DBTX
}

// NewPostgres creates a Postgres-backed store.
func NewPostgres(db DBTX) *Postgres {
	return &Postgres{db: db}
}

const (
	loadOption   = `SELECT value FROM options WHERE name = $1`
	saveOption   = `INSERT INTO options (name, value, updated_at) VALUES ($1, $2::jsonb, now()) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteOption = `DELETE FROM options WHERE name = $1`
)

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	if err := p.db.QueryRow(ctx, loadOption, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (p *Postgres) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := p.db.Exec(ctx, saveOption, key, string(value))
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.db.Exec(ctx, deleteOption, key)
	return err
}

var _ Store = (*Postgres)(nil)
