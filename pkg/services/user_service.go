// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/user"
	"github.com/google/uuid"
)

// UserService manages platform accounts.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Create registers a new account. The password must already be hashed by
// the caller (pkg/auth); this layer never sees plaintext credentials.
func (s *UserService) Create(httpCtx context.Context, email, passwordHash string) (*ent.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if passwordHash == "" {
		return nil, NewValidationError("password_hash", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordHash(passwordHash).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByEmail looks an account up for login. Email matching is
// case-insensitive via the same normalization Create applies.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}

	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID retrieves an account by its ID.
func (s *UserService) GetByID(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
