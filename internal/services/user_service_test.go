package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
)

func TestUserService_Register(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	svc := env.services.UserService

	first, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "pawel", Email: "pawel@example.com", Password: "s3cretpassword"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role, "first account is an administrator")

	second, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "anna", Password: "anotherpassword"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)

	stored, err := env.store.Users().GetByUsername(ctx, "anna")
	require.NoError(t, err)
	assert.NotEqual(t, "anotherpassword", stored.PasswordHash)

	_, err = svc.Register(ctx, &dto.CreateUserRequest{Username: "anna", Password: "anotherpassword"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEntry)

	tests := []struct {
		name string
		req  *dto.CreateUserRequest
	}{
		{name: "nil request", req: nil},
		{name: "short password", req: &dto.CreateUserRequest{Username: "short", Password: "1234567"}},
		{name: "short username", req: &dto.CreateUserRequest{Username: "ab", Password: "longenough"}},
		{name: "bad email", req: &dto.CreateUserRequest{Username: "mail", Email: "nope", Password: "longenough"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	svc := env.services.UserService

	_, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "pawel", Password: "s3cretpassword"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "pawel", "s3cretpassword")
	require.NoError(t, err)
	assert.Equal(t, "pawel", user.Username)

	_, err = svc.Authenticate(ctx, "pawel", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "s3cretpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_GetListDelete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	svc := env.services.UserService

	created, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "pawel", Password: "s3cretpassword"})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteUser(ctx, created.ID.String()))
	_, err = svc.GetUser(ctx, created.ID.String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, uuid.NewString()), repositories.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, "bad"), ErrInvalidInput)
}
