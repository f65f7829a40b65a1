package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.Del(context.Background(), "k") })
	require.Panics(t, func() { c.Incr(context.Background(), "k") })
	require.NoError(t, c.Close())

	var deleted []string
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	c.DelFn = func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = append(deleted, keys...)
		return redis.NewIntResult(int64(len(keys)), nil)
	}
	c.IncrFn = func(context.Context, string) *redis.IntCmd {
		return redis.NewIntResult(7, nil)
	}
	c.CloseFn = func() error { return errors.New("close") }

	require.Equal(t, "v", c.Get(context.Background(), "k").Val())
	require.Equal(t, "OK", c.Set(context.Background(), "k", 1, 0).Val())
	require.EqualValues(t, 2, c.Del(context.Background(), "a", "b").Val())
	require.Equal(t, []string{"a", "b"}, deleted)
	require.EqualValues(t, 7, c.Incr(context.Background(), "n").Val())
	require.EqualError(t, c.Close(), "close")
}

func TestIsMiss(t *testing.T) {
	require.True(t, IsMiss(redis.Nil))
	require.False(t, IsMiss(errors.New("timeout")))
	require.False(t, IsMiss(nil))
}
