package cartstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces cart keys in a shared Redis
const DefaultRedisPrefix = "fashionstop:cart:"

// RedisStore keeps the cart as a JSON string under one Redis key. It lets
// several terminals share a cart.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisStoreWithClient(client, key), nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// The key is prefixed with DefaultRedisPrefix.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "cart"
	}
	return &RedisStore{client: client, key: DefaultRedisPrefix + key}
}

// Key returns the full Redis key holding the cart
func (s *RedisStore) Key() string {
	return s.key
}

// Load reads the cart. A missing key is an empty cart.
func (s *RedisStore) Load(ctx context.Context) ([]cart.Entry, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []cart.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart from Redis: %w", err)
	}
	return decode(data)
}

// Save overwrites the stored cart. The key does not expire.
func (s *RedisStore) Save(ctx context.Context, entries []cart.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart to Redis: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ cart.Store = (*RedisStore)(nil)
