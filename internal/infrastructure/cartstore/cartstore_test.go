package cartstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []cart.Entry {
	return []cart.Entry{
		{ProductID: "p1", Name: "Air Max 270", Price: decimal.NewFromInt(1999), Image: "https://img/1", Brand: "Nike", Quantity: 2},
		{ProductID: "p2", Name: "Ultraboost 22", Price: decimal.RequireFromString("2499.50"), Image: "https://img/2", Brand: "Adidas", Quantity: 1},
	}
}

// storeContract runs the behaviour every cart.Store must share
func storeContract(t *testing.T, store cart.Store) {
	ctx := context.Background()

	t.Run("empty store loads empty cart", func(t *testing.T) {
		entries, err := store.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("save then load returns the same entries", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleEntries()))

		entries, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "p1", entries[0].ProductID)
		assert.Equal(t, 2, entries[0].Quantity)
		assert.True(t, entries[1].Price.Equal(decimal.RequireFromString("2499.5")))
	})

	t.Run("save overwrites the previous snapshot", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleEntries()[:1]))
		require.NoError(t, store.Save(ctx, nil))

		entries, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_Corrupt(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw([]byte("{not json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, cart.ErrCorrupt)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cart.json")
	store := NewFileStore(path)
	storeContract(t, store)

	assert.Equal(t, path, store.Path())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"productId": 12`), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, cart.ErrCorrupt)
}

func TestFileStore_ReadsNumericPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	raw := `[{"productId":"p1","name":"Suede Classic","price":1799,"image":"x","brand":"Puma","quantity":3}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	entries, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Price.Equal(decimal.NewFromInt(1799)))
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))
	assert.ErrorIs(t, store.Save(ctx, sampleEntries()), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// Redis tests require a Redis server on localhost:6379 and are skipped otherwise.
const testRedisAddr = "localhost:6379"

func TestRedisStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	store := NewRedisStoreWithClient(client, "test-"+t.Name())
	client.Del(ctx, store.Key())
	t.Cleanup(func() {
		client.Del(ctx, store.Key())
		_ = store.Close()
	})

	assert.Equal(t, DefaultRedisPrefix+"test-"+t.Name(), store.Key())
	storeContract(t, store)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	_, err := NewRedisStore(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1}, "cart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		cfg := &config.Config{Client: config.ClientConfig{CartStore: config.CartStoreFile, CartFile: filepath.Join(t.TempDir(), "cart.json")}}
		store, closeFn, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Client: config.ClientConfig{CartStore: config.CartStoreMemory}}
		store, _, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Client: config.ClientConfig{CartStore: "cookie"}}
		_, closeFn, err := Open(ctx, cfg)
		assert.Error(t, err)
		assert.NotNil(t, closeFn)
	})
}
