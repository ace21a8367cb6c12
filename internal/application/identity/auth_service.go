package identity

import (
	"context"
	"errors"

	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// AuthService checks admin credentials. A successful login issues no token;
// the client keeps its own session flag.
type AuthService struct {
	adminRepo identity.AdminRepository
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo identity.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login verifies the credentials. Unknown users and wrong passwords both
// yield shared.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AdminInfo, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "login")
	defer span.End()

	admin, err := s.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown admin", zap.String("username", input.Username))
			return nil, shared.ErrUnauthorized
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	if !admin.Authenticate(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.ErrUnauthorized
	}

	s.logger.Info("Admin logged in", zap.String("username", admin.Username))
	telemetry.SetOK(span)
	return &AdminInfo{Username: admin.Username, Role: admin.Role}, nil
}
