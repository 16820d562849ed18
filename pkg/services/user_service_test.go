package services

import (
	"context"
	"errors"
	"testing"

	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates user with normalized email", func(t *testing.T) {
		u, err := service.Create(ctx, "  Dev@Example.COM ", "$2a$10$hash")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "dev@example.com", u.Email)
	})

	t.Run("rejects duplicate email regardless of case", func(t *testing.T) {
		_, err := service.Create(ctx, "taken@example.com", "$2a$10$hash")
		require.NoError(t, err)

		_, err = service.Create(ctx, "TAKEN@example.com", "$2a$10$hash")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.Create(ctx, "", "$2a$10$hash")
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "someone@example.com", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_GetByEmail(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, "login@example.com", "$2a$10$hash")
	require.NoError(t, err)

	t.Run("finds user case-insensitively", func(t *testing.T) {
		u, err := service.GetByEmail(ctx, "LOGIN@Example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("returns ErrNotFound for unknown email", func(t *testing.T) {
		_, err := service.GetByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestUserService_GetByID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, "byid@example.com", "$2a$10$hash")
	require.NoError(t, err)

	u, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid@example.com", u.Email)

	_, err = service.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
