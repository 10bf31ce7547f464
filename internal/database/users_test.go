package database

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	email := gofakeit.UUID() + "@example.com"
	username := "u" + gofakeit.Numerify("########")
	about := gofakeit.Sentence(6)

	id, err := testStore.CreateUser(ctx, CreateUserParams{
		Email:        email,
		Username:     &username,
		PasswordHash: "hash",
		About:        &about,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := testStore.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, email, byID.Email)
	require.Equal(t, username, *byID.Username)
	require.Nil(t, byID.FirstName)
	require.Equal(t, about, *byID.About)
	require.True(t, byID.IsActive)
	require.False(t, byID.CreatedAt.IsZero())

	byEmail, err := testStore.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.Equal(t, byID.ID, byEmail.ID)

	missing, err := testStore.GetUserByID(ctx, -1)
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = testStore.GetUserByEmail(ctx, "nobody-"+email)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCreateUser_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	existing := createRandomUser(t)

	_, err := testStore.CreateUser(ctx, CreateUserParams{Email: existing.Email, PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrEmailTaken)

	username := "taken" + gofakeit.Numerify("#####")
	_, err = testStore.CreateUser(ctx, CreateUserParams{Email: gofakeit.UUID() + "@example.com", Username: &username, PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = testStore.CreateUser(ctx, CreateUserParams{Email: gofakeit.UUID() + "@example.com", Username: &username, PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_ManyWithoutUsername(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := testStore.CreateUser(context.Background(), CreateUserParams{
			Email:        gofakeit.UUID() + "@example.com",
			PasswordHash: "hash",
		})
		require.NoError(t, err, "NULL usernames must not collide")
	}
}

func TestUpdateUserProfile(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	about := "new about"
	updated, err := testStore.UpdateUserProfile(ctx, UpdateUserProfileParams{ID: user.ID, About: &about})
	require.NoError(t, err)
	require.True(t, updated)

	got, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new about", *got.About)
	require.Equal(t, *user.FirstName, *got.FirstName, "nil fields keep their value")

	updated, err = testStore.UpdateUserProfile(ctx, UpdateUserProfileParams{ID: -1, About: &about})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestUpdateUserEmail(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)
	other := createRandomUser(t)

	newEmail := gofakeit.UUID() + "@example.com"
	updated, err := testStore.UpdateUserEmail(ctx, user.ID, newEmail)
	require.NoError(t, err)
	require.True(t, updated)

	got, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, newEmail, got.Email)

	_, err = testStore.UpdateUserEmail(ctx, user.ID, other.Email)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	updated, err := testStore.DeactivateUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, updated)

	got, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	updated, err = testStore.DeactivateUser(ctx, -1)
	require.NoError(t, err)
	require.False(t, updated)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	deleted, err := testStore.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = testStore.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := testStore.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
