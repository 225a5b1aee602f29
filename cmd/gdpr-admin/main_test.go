package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAll(t *testing.T) {
	t.Parallel()

	var order []string
	hook := func(name string, err error) func(context.Context) error {
		return func(ctx context.Context) error {
			assert.NoError(t, ctx.Err())
			order = append(order, name)
			return err
		}
	}
	errRedis := errors.New("redis close failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := closeAll(ctx, []func(context.Context) error{
		hook("postgres", nil),
		hook("redis", errRedis),
	})

	assert.ErrorIs(t, err, errRedis)
	assert.Equal(t, []string{"redis", "postgres"}, order)
	assert.NoError(t, closeAll(context.Background(), nil))
}
