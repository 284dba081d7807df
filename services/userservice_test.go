package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authapi/dto"
	apperrors "authapi/pkg/errors"
)

func TestUserService_CreateAndList(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	err := svc.CreateUser(ctx, dto.UserRequest{Name: "Ann", Email: "Ann@X.com", Password: "pw123"})
	require.NoError(t, err)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ann@x.com", users[0].Email)
	assert.NotEmpty(t, users[0].UserID)

	stored, err := repo.FindByID(ctx, users[0].UserID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123")))
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUserByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_Update(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, dto.UserRequest{Name: "Ann", Email: "ann@x.com", Password: "pw123"}))
	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	id := users[0].UserID

	err = svc.UpdateUser(ctx, id, dto.UserRequest{Name: "Anna", Email: "anna@x.com", Password: "newpw"})
	require.NoError(t, err)

	updated, err := svc.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "anna@x.com", updated.Email)

	stored, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpw")))

	err = svc.UpdateUser(ctx, "missing-id", dto.UserRequest{Name: "X", Email: "x@x.com", Password: "p"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, dto.UserRequest{Name: "Ann", Email: "ann@x.com", Password: "pw123"}))
	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, users[0].UserID))

	_, err = svc.GetUserByID(ctx, users[0].UserID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	err = svc.DeleteUser(ctx, users[0].UserID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
