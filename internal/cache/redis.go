package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis is a Cache backed by Redis.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

var _ Cache = (*Redis)(nil)

// NewRedis connects to the Redis server at url, e.g.
// redis://localhost:6379/0. Keys are prefixed with namespace and expire
// after ttl.
func NewRedis(ctx context.Context, url, namespace string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Debug().Str("addr", opt.Addr).Dur("ttl", ttl).Msg("using redis cache")
	return &Redis{client: client, ttl: ttl, namespace: namespace}, nil
}

func (r *Redis) key(k string) string {
	return r.namespace + ":" + k
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cached value could not be decoded")
		return false, err
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		return err
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidation failed")
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return r.client.Del(ctx, keys...).Err()
}

// versionKey is outside of the namespace so that Invalidate does not
// reset the version.
func (r *Redis) versionKey(namespace string) string {
	return r.key("version:" + namespace)
}

func (r *Redis) Version(ctx context.Context, namespace string) (int64, error) {
	v, err := r.client.Get(ctx, r.versionKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache version read failed")
		return 0, err
	}
	return v, nil
}

func (r *Redis) Bump(ctx context.Context, namespace string) (int64, error) {
	v, err := r.client.Incr(ctx, r.versionKey(namespace)).Result()
	if err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache version bump failed")
		return 0, err
	}
	return v, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
