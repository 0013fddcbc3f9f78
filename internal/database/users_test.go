package database

import (
	"context"
	"testing"

	"menedzer-dysku/internal/auth"
	"menedzer-dysku/internal/models"

	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, username, email string) *models.User {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestCreateUser(t *testing.T) {
	user := createTestUser(t, "jan_kowalski", "jan@example.com")

	require.NotZero(t, user.ID)
	require.Equal(t, "jan_kowalski", user.Username)
	require.Equal(t, "jan@example.com", user.Email)
	require.NotEmpty(t, user.PasswordHash)
	require.NotZero(t, user.CreatedAt)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	createTestUser(t, "dup_email_a", "dup@example.com")

	_, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     "dup_email_b",
		Email:        "dup@example.com",
		PasswordHash: "hash",
	})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	createTestUser(t, "dup_username", "dup_username_a@example.com")

	_, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Username:     "dup_username",
		Email:        "dup_username_b@example.com",
		PasswordHash: "hash",
	})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestGetUserByEmail(t *testing.T) {
	created := createTestUser(t, "by_email", "by_email@example.com")

	found, err := testStore.GetUserByEmail(context.Background(), "by_email@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "by_email", found.Username)
	require.NotEmpty(t, found.PasswordHash)

	missing, err := testStore.GetUserByEmail(context.Background(), "nonexistent@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGetUserByEmailOrUsername(t *testing.T) {
	created := createTestUser(t, "either_key", "either_key@example.com")

	byEmail, err := testStore.GetUserByEmailOrUsername(context.Background(), "either_key@example.com", "no_such_name")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, created.ID, byEmail.ID)

	byUsername, err := testStore.GetUserByEmailOrUsername(context.Background(), "no@example.com", "either_key")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	require.Equal(t, created.ID, byUsername.ID)

	missing, err := testStore.GetUserByEmailOrUsername(context.Background(), "no@example.com", "no_such_name")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGetUserByID(t *testing.T) {
	created := createTestUser(t, "by_id", "by_id@example.com")

	found, err := testStore.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.Username, found.Username)

	missing, err := testStore.GetUserByID(context.Background(), 999999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
