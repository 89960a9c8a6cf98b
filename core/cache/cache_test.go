package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("PutGet", func(t *testing.T) {
		m, err := NewMemory(10)
		require.NoError(t, err)

		require.NoError(t, m.Put(ctx, "k", "v", time.Minute))
		v, ok, err := m.Get(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		has, err := m.Has(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("Miss", func(t *testing.T) {
		m, err := NewMemory(10)
		require.NoError(t, err)

		v, ok, err := m.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("Expiry", func(t *testing.T) {
		m, err := NewMemory(10)
		require.NoError(t, err)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }

		require.NoError(t, m.Put(ctx, "k", "v", time.Minute))
		require.NoError(t, m.Put(ctx, "forever", "v", 0))

		now = now.Add(2 * time.Minute)
		has, err := m.Has(ctx, "k")
		assert.NoError(t, err)
		assert.False(t, has)

		_, ok, _ := m.Get(ctx, "forever")
		assert.True(t, ok)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Eviction", func(t *testing.T) {
		m, err := NewMemory(2)
		require.NoError(t, err)

		_ = m.Put(ctx, "a", "1", 0)
		_ = m.Put(ctx, "b", "2", 0)
		_ = m.Put(ctx, "c", "3", 0)

		has, _ := m.Has(ctx, "a")
		assert.False(t, has)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("Flush", func(t *testing.T) {
		m, err := NewMemory(10)
		require.NoError(t, err)

		_ = m.Put(ctx, "a", "1", 0)
		assert.NoError(t, m.Flush(ctx))
		assert.Equal(t, 0, m.Len())
	})
}

func TestNew(t *testing.T) {
	t.Run("DefaultsToMemory", func(t *testing.T) {
		c, err := New(Config{})
		assert.NoError(t, err)
		assert.IsType(t, &Memory{}, c)
	})

	t.Run("UnsupportedDriver", func(t *testing.T) {
		_, err := New(Config{Driver: "memcached"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported cache driver")
	})

	t.Run("RedisUnreachable", func(t *testing.T) {
		_, err := New(Config{Driver: DriverRedis, RedisURL: "redis://127.0.0.1:1/0"})
		assert.Error(t, err)
	})

	t.Run("RedisEmptyURL", func(t *testing.T) {
		_, err := NewRedis("")
		assert.Error(t, err)
	})
}

func TestBuildUniversalOptions(t *testing.T) {
	t.Run("SingleURL", func(t *testing.T) {
		opts, err := buildUniversalOptions("redis://:secret@cache:6380/3")
		require.NoError(t, err)
		assert.Equal(t, []string{"cache:6380"}, opts.Addrs)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("MixedList", func(t *testing.T) {
		opts, err := buildUniversalOptions("redis://a:6379, b:6379 ,")
		require.NoError(t, err)
		assert.Equal(t, []string{"a:6379", "b:6379"}, opts.Addrs)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := buildUniversalOptions(" , ")
		assert.Error(t, err)
	})

	t.Run("InvalidURL", func(t *testing.T) {
		_, err := buildUniversalOptions("redis://host:6379/notadb")
		assert.Error(t, err)
	})
}
