package service

import (
	"context"
	"errors"

	"github.com/gibugumi/cms/internal/model"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The same
// error covers unknown emails and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService authenticates back-office admins.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.Admin, error)
}
