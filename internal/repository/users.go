package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/gdpr/internal/gdpr"
	"github.com/dmitrymomot/gdpr/pkg/db"
)

// Users is the PostgreSQL gdpr.UserDirectory.
type Users struct {
	pool *pgxpool.Pool
}

// NewUsers creates a user directory backed by pool.
func NewUsers(pool *pgxpool.Pool) *Users {
	return &Users{pool: pool}
}

const (
	userColumns    = `id, email, login, display_name`
	userByEmail    = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	userByID       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	detachComments = `UPDATE comments SET user_id = NULL WHERE user_id = $1`
	deletePosts    = `DELETE FROM posts WHERE author_id = $1`
	deleteUser     = `DELETE FROM users WHERE id = $1`
)

func (u *Users) UserByEmail(ctx context.Context, email string) (gdpr.User, error) {
	return u.queryUser(ctx, userByEmail, email)
}

func (u *Users) UserByID(ctx context.Context, id int64) (gdpr.User, error) {
	return u.queryUser(ctx, userByID, id)
}

// DeleteUser removes the account and its posts. Comments stay, detached
// from the account.
func (u *Users) DeleteUser(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, u.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, detachComments, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deletePosts, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, deleteUser, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return gdpr.ErrUserNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gdpr.ErrUserNotFound):
		return err
	default:
		return errors.Join(ErrDeleteUser, err)
	}
}

func (u *Users) queryUser(ctx context.Context, query string, arg any) (gdpr.User, error) {
	var user gdpr.User
	err := u.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.Login, &user.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gdpr.User{}, gdpr.ErrUserNotFound
		}
		return gdpr.User{}, errors.Join(ErrQueryUser, err)
	}
	return user, nil
}

var _ gdpr.UserDirectory = (*Users)(nil)
