package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Content is the PostgreSQL gdpr.ContentIndex.
type Content struct {
	db DBTX
}

// NewContent creates a content index. db is a pool, connection or tx.
func NewContent(db DBTX) *Content {
	return &Content{db: db}
}

const (
	publicPostTypes = `SELECT name FROM post_types WHERE public ORDER BY name`
	countUserPosts  = `SELECT count(*) FROM posts WHERE author_id = $1 AND post_type = $2`
	countComments   = `SELECT count(*) FROM comments WHERE lower(author_email) = lower($1) AND (approved OR $2)`
)

func (c *Content) PublicPostTypes(ctx context.Context) ([]string, error) {
	rows, err := c.db.Query(ctx, publicPostTypes)
	if err != nil {
		return nil, errors.Join(ErrQueryContent, err)
	}
	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrQueryContent, err)
	}
	return types, nil
}

func (c *Content) CountUserPosts(ctx context.Context, userID int64, postType string) (int, error) {
	var n int
	if err := c.db.QueryRow(ctx, countUserPosts, userID, postType).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryContent, err)
	}
	return n, nil
}

// CountCommentsByEmail counts comments left under email. Unapproved
// comments count only when includeUnapproved is set.
func (c *Content) CountCommentsByEmail(ctx context.Context, email string, includeUnapproved bool) (int, error) {
	var n int
	if err := c.db.QueryRow(ctx, countComments, email, includeUnapproved).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryComments, err)
	}
	return n, nil
}

var _ gdpr.ContentIndex = (*Content)(nil)
