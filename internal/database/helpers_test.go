package database

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"social-backend/internal/models"
)

func createRandomUser(t *testing.T) *models.User {
	t.Helper()

	firstName := gofakeit.FirstName()
	id, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Email:        gofakeit.UUID() + "@example.com",
		PasswordHash: "hash",
		FirstName:    &firstName,
	})
	require.NoError(t, err)

	user, err := testStore.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}
