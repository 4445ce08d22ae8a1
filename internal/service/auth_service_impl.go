package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	admins repository.AdminRepository
}

// NewAuthService creates an AuthService over the admin repository.
func NewAuthService(admins repository.AdminRepository) AuthService {
	return &authServiceImpl{admins: admins}
}

// Authenticate verifies the email/password pair against the stored bcrypt hash.
func (s *authServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// HashPassword produces a bcrypt digest for storing a new admin password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
