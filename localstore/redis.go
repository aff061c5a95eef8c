package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/midway"
)

// Config holds Redis connection settings with environment variable support.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	SnapshotTTL    time.Duration `env:"REDIS_SNAPSHOT_TTL" envDefault:"1h"`
}

// Connection errors.
var (
	ErrEmptyConnectionURL = errors.New("localstore: redis connection URL is required")
	ErrConnectionFailed   = errors.New("localstore: failed to connect to redis")
)

// Connect creates a Redis client from cfg and verifies connectivity with a
// ping, retrying on transient failures before giving up.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	client := redis.NewClient(opt)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	for i := 0; i < attempts; i++ {
		if err = client.Ping(connectCtx).Err(); err == nil {
			return client, nil
		}
		if i < attempts-1 {
			select {
			case <-connectCtx.Done():
				_ = client.Close()
				return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, connectCtx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
}

// RedisStore persists locals snapshots in Redis with a TTL.
type RedisStore struct {
	client    redis.UniversalClient
	ttl       time.Duration
	keyPrefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithTTL sets the snapshot expiration. Zero disables expiration.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// WithKeyPrefix sets the Redis key namespace (default: "locals:").
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		ttl:       time.Hour,
		keyPrefix: "locals:",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewRedisStoreFromConfig connects to Redis and returns a store configured
// with the TTL from cfg.
func NewRedisStoreFromConfig(ctx context.Context, cfg Config, opts ...RedisOption) (*RedisStore, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(client, append([]RedisOption{WithTTL(cfg.SnapshotTTL)}, opts...)...), nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, key string, locals map[string]any) error {
	payload, err := midway.TrySerializeLocals(locals)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.keyPrefix+key, payload, s.ttl).Err()
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, key string) (map[string]any, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: failed to load snapshot: %w", err)
	}
	return decode(payload)
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}
