package cartstore

import (
	"context"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
)

// Open creates the cart store selected by cfg.Client.CartStore. The returned
// close function releases any connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (cart.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Client.CartStore {
	case config.CartStoreFile, "":
		return NewFileStore(cfg.Client.CartFile), noop, nil
	case config.CartStoreMemory:
		return NewMemoryStore(), noop, nil
	case config.CartStoreRedis:
		store, err := NewRedisStore(ctx, cfg.Redis, cfg.Client.CartKey)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cart store %q", cfg.Client.CartStore)
	}
}
