package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/adapter/cache"
)

func TestRedisLockoutStore(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	s := cache.NewRedisLockoutStore(client)
	key := uuid.NewString()
	now := time.Now()

	state, err := s.RecordFailure(ctx, key, now, 2, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, state.FailedCount)
	assert.Nil(t, state.LockedUntil)

	state, err = s.RecordFailure(ctx, key, now, 2, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, state.LockedUntil)

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FailedCount)
	require.NotNil(t, got.LockedUntil)
	assert.Equal(t, state.LockedUntil.Unix(), got.LockedUntil.Unix())

	require.NoError(t, s.Clear(ctx, key))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, got.FailedCount)
}

func TestNoLockout(t *testing.T) {
	var s cache.NoLockout
	state, err := s.RecordFailure(context.Background(), "k", time.Now(), 1, time.Minute)
	require.NoError(t, err)
	assert.Nil(t, state.LockedUntil)
}
