package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"crowdoo/internal/core/port"
)

const lockoutKeyPrefix = "auth:lockout:"

// RedisLockoutStore keeps failed login counters in Redis hashes.
type RedisLockoutStore struct {
	client redis.Cmdable
}

var _ port.LockoutStore = (*RedisLockoutStore)(nil)

func NewRedisLockoutStore(client redis.Cmdable) *RedisLockoutStore {
	return &RedisLockoutStore{client: client}
}

func (s *RedisLockoutStore) Get(ctx context.Context, key string) (port.LockoutState, error) {
	data, err := s.client.HGetAll(ctx, lockoutKeyPrefix+key).Result()
	if err != nil {
		return port.LockoutState{}, err
	}
	state := port.LockoutState{}
	if raw, ok := data["failed_count"]; ok {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			state.FailedCount = n
		}
	}
	if raw, ok := data["locked_until"]; ok && raw != "" {
		if unix, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil && unix > 0 {
			t := time.Unix(unix, 0).UTC()
			state.LockedUntil = &t
		}
	}
	return state, nil
}

// RecordFailure counts a failed attempt and locks the key for window once
// threshold is reached. Counters expire on their own after a day.
func (s *RedisLockoutStore) RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (port.LockoutState, error) {
	redisKey := lockoutKeyPrefix + key

	count, err := s.client.HIncrBy(ctx, redisKey, "failed_count", 1).Result()
	if err != nil {
		return port.LockoutState{}, err
	}
	state := port.LockoutState{FailedCount: int(count)}
	if int(count) < threshold {
		_ = s.client.Expire(ctx, redisKey, 24*time.Hour).Err()
		return state, nil
	}

	lockedUntil := now.Add(window).UTC()
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, redisKey, "locked_until", lockedUntil.Unix())
		p.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return port.LockoutState{}, err
	}
	state.LockedUntil = &lockedUntil
	return state, nil
}

func (s *RedisLockoutStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, lockoutKeyPrefix+key).Err()
}

// NoLockout never locks anyone out. It is used when Redis is not configured.
type NoLockout struct{}

func (NoLockout) Get(context.Context, string) (port.LockoutState, error) {
	return port.LockoutState{}, nil
}

func (NoLockout) RecordFailure(context.Context, string, time.Time, int, time.Duration) (port.LockoutState, error) {
	return port.LockoutState{}, nil
}

func (NoLockout) Clear(context.Context, string) error { return nil }
