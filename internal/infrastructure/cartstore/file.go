package cartstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fashionstop/storefront/internal/domain/cart"
)

// FileStore keeps the cart in a JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the cart is written to
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the cart. A missing file is an empty cart.
func (s *FileStore) Load(ctx context.Context) ([]cart.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []cart.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}
	return decode(data)
}

// Save writes the cart through a temporary file and a rename, so a crash
// never leaves a half-written cart behind.
func (s *FileStore) Save(ctx context.Context, entries []cart.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}

var _ cart.Store = (*FileStore)(nil)
