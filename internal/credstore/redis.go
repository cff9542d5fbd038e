package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
	Key       string
}

// RedisStore keeps the token under "<namespace>:<key>" with no expiry.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return NewRedisStoreFromClient(rdb, opts.Namespace, opts.Key), nil
}

// NewRedisStoreFromClient wraps an existing client. The store takes
// ownership and closes it on Close.
func NewRedisStoreFromClient(rdb *redis.Client, namespace, key string) *RedisStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{rdb: rdb, key: namespace + ":" + key}
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.rdb.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (string, bool, error) {
	token, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load credential: %w", err)
	}
	return token, true, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
