package repository_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/internal/repository"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(repository.Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "00001_init.sql", files[0])

	data, err := fs.ReadFile(repository.Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS options")
}
