package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
)

type mockAdminRepository struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.Admin, error)
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepository) Create(ctx context.Context, a *model.Admin) error {
	return nil
}

func TestAuthenticate_Success(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	repo := &mockAdminRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Admin, error) {
			return &model.Admin{ID: "1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	admin, err := svc.Authenticate(context.Background(), "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if admin.ID != "1" {
		t.Errorf("expected admin ID 1, got %q", admin.ID)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, _ := HashPassword("password123")
	repo := &mockAdminRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Admin, error) {
			return &model.Admin{ID: "1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "admin@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockAdminRepository{})

	if _, err := svc.Authenticate(context.Background(), "who@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
