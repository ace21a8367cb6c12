package cart

import (
	"context"
	"errors"
)

// ErrCorrupt is returned by a Store when the stored cart cannot be decoded.
// Callers treat it like an absent cart.
var ErrCorrupt = errors.New("stored cart is corrupt")

// Store persists the whole cart under a single slot. Save always overwrites
// the previous snapshot; Load returns an empty slice when nothing is stored.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}
