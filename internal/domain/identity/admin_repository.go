package identity

import "context"

// AdminRepository defines the interface for admin account persistence
type AdminRepository interface {
	// FindByUsername returns shared.ErrNotFound when no such admin exists
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	// Save creates or updates an admin account
	Save(ctx context.Context, admin *Admin) error
}
