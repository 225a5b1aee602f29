// Package db opens PostgreSQL connection pools and applies embedded goose
// migrations.
//
//	pool, err := db.Open(ctx, os.Getenv("DATABASE_CONN_URL"),
//	    db.WithMigrations(repository.Migrations),
//	    db.WithLogger(log),
//	)
//
// [Healthcheck] and [Shutdown] return closures for readiness probes and
// graceful shutdown hooks. [WithTx] runs a function inside a transaction.
package db
