package memory

import (
	"context"
	"sync"

	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/shared"
)

// AdminRepository keeps admin accounts in a map guarded by a RWMutex
type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]identity.Admin
}

// NewAdminRepository creates an empty AdminRepository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: make(map[string]identity.Admin)}
}

// FindByUsername returns a copy of the stored admin
func (r *AdminRepository) FindByUsername(_ context.Context, username string) (*identity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &a, nil
}

// Save stores a copy of the admin
func (r *AdminRepository) Save(_ context.Context, admin *identity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[admin.Username] = *admin
	return nil
}

var _ identity.AdminRepository = (*AdminRepository)(nil)
