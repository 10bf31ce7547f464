package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"social-backend/internal/auth"
	"social-backend/internal/database"
	"social-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "service_test_secret"

func newTestAuthService(t *testing.T) (*AuthService, *MockQuerier, *MockChallenges) {
	t.Helper()

	q := new(MockQuerier)
	c := new(MockChallenges)
	profiles := NewUserProfileService(fakeStore{q: q}, fakeHasher{}, new(MockVerifier))

	svc, err := NewAuthService(fakeStore{q: q}, fakeHasher{}, profiles, c, AuthConfig{
		Secret:     testSecret,
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)
	svc.newToken = func() string { return "refresh-token" }
	return svc, q, c
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	active := &models.User{ID: 4, Email: "jane@x.com", PasswordHash: "hashed:password123", IsActive: true}

	t.Run("opens a session and issues tokens", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByEmail", mock.Anything, "jane@x.com").Return(active, nil).Once()
		q.On("CreateSession", mock.Anything, mock.MatchedBy(func(p database.CreateSessionParams) bool {
			return p.UserID == 4 && p.RefreshToken == "refresh-token" && p.UserAgent == "test-agent" &&
				time.Until(p.ExpiresAt) > 50*time.Minute
		})).Return(nil).Once()

		tokens, err := svc.Login(ctx, LoginInput{Email: "jane@x.com", Password: "password123", UserAgent: "test-agent"})
		require.NoError(t, err)
		require.Equal(t, "refresh-token", tokens.RefreshToken)
		require.Equal(t, "bearer", tokens.TokenType)

		claims, err := auth.VerifyJWT(tokens.AccessToken, testSecret)
		require.NoError(t, err)
		require.Equal(t, int64(4), claims.UserID)
		q.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByEmail", mock.Anything, "jane@x.com").Return(active, nil).Once()

		_, err := svc.Login(ctx, LoginInput{Email: "jane@x.com", Password: "nope"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		q.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByEmail", mock.Anything, "ghost@x.com").Return(nil, nil).Once()

		_, err := svc.Login(ctx, LoginInput{Email: "ghost@x.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token consumed concurrently", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByRefreshToken", mock.Anything, "old").Return(active, nil).Once()
		q.On("DeleteSessionByRefreshToken", mock.Anything, int64(4), "old").Return(false, nil).Once()

		_, err := svc.Refresh(ctx, "old", "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		q.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		inactive := *active
		inactive.IsActive = false
		q.On("GetUserByEmail", mock.Anything, "jane@x.com").Return(&inactive, nil).Once()

		_, err := svc.Login(ctx, LoginInput{Email: "jane@x.com", Password: "password123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, q, _ := newTestAuthService(t)
	q.On("DeleteSessionByRefreshToken", mock.Anything, int64(4), "refresh-token").Return(true, nil).Once()
	q.On("DeleteSessionByRefreshToken", mock.Anything, int64(4), "unknown").Return(false, nil).Once()

	require.NoError(t, svc.Logout(context.Background(), 4, "refresh-token"))
	require.NoError(t, svc.Logout(context.Background(), 4, "unknown"))
	q.AssertExpectations(t)
}

func TestAuthService_ConfirmEmailUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the email and spends the token", func(t *testing.T) {
		svc, q, c := newTestAuthService(t)
		c.On("Lookup", mock.Anything, "tok").Return(int64(4), "moved@x.com", true, nil).Once()
		q.On("UpdateUserEmail", mock.Anything, int64(4), "moved@x.com").Return(true, nil).Once()
		c.On("Consume", mock.Anything, "tok").Return(nil).Once()

		require.NoError(t, svc.ConfirmEmailUpdate(ctx, "tok"))
		q.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, q, c := newTestAuthService(t)
		c.On("Lookup", mock.Anything, "stale").Return(int64(0), "", false, nil).Once()

		require.ErrorIs(t, svc.ConfirmEmailUpdate(ctx, "stale"), ErrNotFound)
		q.AssertNotCalled(t, "UpdateUserEmail", mock.Anything, mock.Anything, mock.Anything)
		c.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("empty token", func(t *testing.T) {
		svc, _, c := newTestAuthService(t)

		require.ErrorIs(t, svc.ConfirmEmailUpdate(ctx, ""), ErrValidation)
		c.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})

	t.Run("failed update keeps the token", func(t *testing.T) {
		svc, q, c := newTestAuthService(t)
		c.On("Lookup", mock.Anything, "tok").Return(int64(4), "dup@x.com", true, nil).Once()
		q.On("UpdateUserEmail", mock.Anything, int64(4), "dup@x.com").Return(false, database.ErrEmailTaken).Once()

		require.ErrorIs(t, svc.ConfirmEmailUpdate(ctx, "tok"), ErrConflict)
		c.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("consume failure does not undo the change", func(t *testing.T) {
		svc, q, c := newTestAuthService(t)
		c.On("Lookup", mock.Anything, "tok").Return(int64(4), "moved@x.com", true, nil).Once()
		q.On("UpdateUserEmail", mock.Anything, int64(4), "moved@x.com").Return(true, nil).Once()
		c.On("Consume", mock.Anything, "tok").Return(errors.New("redis down")).Once()

		require.NoError(t, svc.ConfirmEmailUpdate(ctx, "tok"))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	active := &models.User{ID: 4, Email: "jane@x.com", IsActive: true}

	t.Run("rotates the session", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByRefreshToken", mock.Anything, "old").Return(active, nil).Once()
		q.On("DeleteSessionByRefreshToken", mock.Anything, int64(4), "old").Return(true, nil).Once()
		q.On("CreateSession", mock.Anything, mock.MatchedBy(func(p database.CreateSessionParams) bool {
			return p.UserID == 4 && p.RefreshToken == "refresh-token" && p.ClientIP == "10.0.0.1"
		})).Return(nil).Once()

		tokens, err := svc.Refresh(ctx, "old", "agent", "10.0.0.1")
		require.NoError(t, err)
		require.Equal(t, "refresh-token", tokens.RefreshToken)
		q.AssertExpectations(t)
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		q.On("GetUserByRefreshToken", mock.Anything, "stale").Return(nil, nil).Once()

		_, err := svc.Refresh(ctx, "stale", "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		q.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, q, _ := newTestAuthService(t)
		inactive := *active
		inactive.IsActive = false
		q.On("GetUserByRefreshToken", mock.Anything, "old").Return(&inactive, nil).Once()

		_, err := svc.Refresh(ctx, "old", "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing token", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)

		_, err := svc.Refresh(ctx, "", "", "")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthService_Sessions(t *testing.T) {
	ctx := context.Background()
	svc, q, _ := newTestAuthService(t)
	sessionID := uuid.New()

	q.On("ListSessionsForUser", mock.Anything, int64(4)).Return([]models.Session{{ID: sessionID, UserID: 4}}, nil).Once()
	q.On("DeleteSessionByID", mock.Anything, sessionID, int64(4)).Return(true, nil).Once()
	q.On("DeleteSessionByID", mock.Anything, sessionID, int64(5)).Return(false, nil).Once()
	q.On("DeleteAllSessionsForUser", mock.Anything, int64(4)).Return(int64(3), nil).Once()

	sessions, err := svc.ListSessions(ctx, 4)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	require.NoError(t, svc.RevokeSession(ctx, 4, sessionID))
	require.ErrorIs(t, svc.RevokeSession(ctx, 5, sessionID), ErrNotFound)
	require.NoError(t, svc.RevokeAllSessions(ctx, 4))
	q.AssertExpectations(t)
}
