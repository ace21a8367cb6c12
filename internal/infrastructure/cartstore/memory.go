package cartstore

import (
	"context"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/cart"
)

// MemoryStore keeps the encoded cart in memory. It is used by tests and by
// the terminal client when persistence is switched off.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the last saved snapshot
func (s *MemoryStore) Load(_ context.Context) ([]cart.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.data)
}

// Save replaces the stored snapshot
func (s *MemoryStore) Save(_ context.Context, entries []cart.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// SetRaw stores raw bytes as the snapshot, e.g. to simulate corruption
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}

var _ cart.Store = (*MemoryStore)(nil)
