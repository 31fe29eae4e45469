package auth

import (
	"context"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	"github.com/medicore/hms-api/pkg/auth"
	apperrors "github.com/medicore/hms-api/pkg/errors"
	"github.com/medicore/hms-api/pkg/security"
)

// Service is the admission gate: one credential check, Admitted or Denied,
// no side effects on failure.
type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Authenticate checks the username/password pair against the users table.
// Denials are uniform: an unknown username and a wrong password produce the
// same error, so callers cannot probe which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized()
		}
		return nil, err
	}

	if !s.hasher.Compare(user.Password, password) {
		return nil, apperrors.Unauthorized()
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	return &model.TokenResponse{Token: token, Username: user.Username}, nil
}
