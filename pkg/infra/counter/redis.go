package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type RedisStoreOpts struct {
	UuidProvider func() uuid.UUID
}

type redisStore struct {
	redis        *redis.Client
	uuidProvider func() uuid.UUID
}

func NewRedisStore(client *redis.Client, opts *RedisStoreOpts) Store {
	uuidProvider := uuid.New
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &redisStore{
		redis:        client,
		uuidProvider: uuidProvider,
	}
}

func (s *redisStore) Hit(ctx context.Context, key string, at time.Time, window time.Duration) (int64, error) {
	now := at.UnixMilli()
	cutoff := at.Add(-window).UnixMilli()

	pipe := s.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now),
		Member: strconv.FormatInt(now, 10) + ":" + s.uuidProvider().String(),
	})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("counter hit %s: %w", key, err)
	}
	return card.Val(), nil
}

func (s *redisStore) Track(ctx context.Context, key, member string, at time.Time, window time.Duration) ([]string, error) {
	cutoff := at.Add(-window).UnixMilli()

	pipe := s.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: member,
	})
	members := pipe.ZRange(ctx, key, 0, -1)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("counter track %s: %w", key, err)
	}
	return members.Val(), nil
}

func (s *redisStore) Incr(ctx context.Context, key string) (int64, error) {
	return s.redis.Incr(ctx, key).Result()
}

func (s *redisStore) Get(ctx context.Context, key string) (int64, error) {
	v, err := s.redis.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}
