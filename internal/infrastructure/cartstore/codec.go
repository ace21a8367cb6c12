// Package cartstore persists the storefront cart snapshot. Every store keeps
// the whole cart as one JSON array under a single slot (a file, a Redis key
// or a variable), so Save always replaces the previous snapshot.
package cartstore

import (
	"encoding/json"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/cart"
)

func encode(entries []cart.Entry) ([]byte, error) {
	if entries == nil {
		entries = []cart.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]cart.Entry, error) {
	if len(data) == 0 {
		return []cart.Entry{}, nil
	}
	var entries []cart.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", cart.ErrCorrupt, err)
	}
	if entries == nil {
		entries = []cart.Entry{}
	}
	return entries, nil
}
