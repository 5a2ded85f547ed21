package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/luggio/console/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
}

// authService implements Service.
type authService struct {
	tokens    *TokenManager
	staffRepo domain.StaffRepository
}

// NewService creates a new auth Service.
func NewService(tokens *TokenManager, staffRepo domain.StaffRepository) Service {
	return &authService{tokens: tokens, staffRepo: staffRepo}
}

// Login authenticates a staff account by email and password and returns a
// bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		// Don't reveal whether the account exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(staff.ID)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
