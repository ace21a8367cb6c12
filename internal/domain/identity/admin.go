package identity

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/fashionstop/storefront/internal/domain/shared"
)

// RoleAdmin is the only role an operator account can have
const RoleAdmin = "admin"

// Admin is an operator account of the admin panel.
//
// The password is stored and compared as plain text. Hashing would change
// how existing records are provisioned, so it is kept until credentials are
// reworked as a whole.
type Admin struct {
	Username  string
	Password  string
	Role      string
	CreatedAt time.Time
}

// NewAdmin creates an admin account
func NewAdmin(username, password string) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	return &Admin{
		Username:  username,
		Password:  password,
		Role:      RoleAdmin,
		CreatedAt: time.Now(),
	}, nil
}

// Authenticate reports whether password matches the stored credential
func (a *Admin) Authenticate(password string) bool {
	return subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1
}
