// Package repository implements the gdpr user directory and content index
// on PostgreSQL.
//
// The schema lives in the embedded goose migrations exposed as Migrations;
// pass them to db.Open with db.WithMigrations. The same migrations create
// the options table used by options.Postgres.
//
//	pool, err := db.Open(ctx, url, db.WithMigrations(repository.Migrations))
//	users := repository.NewUsers(pool)
//	content := repository.NewContent(pool)
package repository
