// Package credstore persists the dashboard's bearer token across restarts.
// A store holds exactly one value under one fixed key.
package credstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultKey is the slot the storefront has always used for the agent token.
const DefaultKey = "agentToken"

const DefaultNamespace = "storefront"

var ErrUnknownBackend = errors.New("unknown credential store backend")

// Store is a single-slot credential store. Save overwrites atomically, Clear
// removes the slot, and nothing ever expires.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
	Close() error
}

type Config struct {
	Backend   string
	Namespace string
	Key       string

	// file backend
	Path string

	// sqlite backend
	SQLitePath string

	// redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func (c Config) slot() (namespace, key string) {
	namespace, key = c.Namespace, c.Key
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if key == "" {
		key = DefaultKey
	}
	return namespace, key
}

// Open builds the store selected by cfg.Backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	namespace, key := cfg.slot()

	switch strings.ToLower(cfg.Backend) {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = "credentials.json"
		}
		return NewFileStore(path, key), nil
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "storefront.db"
		}
		return NewSQLiteStore(ctx, path, namespace, key)
	case "redis":
		return NewRedisStore(ctx, RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: namespace,
			Key:       key,
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
