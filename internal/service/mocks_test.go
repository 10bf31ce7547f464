package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"social-backend/internal/database"
	"social-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ database.Querier = (*MockQuerier)(nil)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) CreateUser(ctx context.Context, arg database.CreateUserParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockQuerier) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockQuerier) UpdateUserProfile(ctx context.Context, arg database.UpdateUserProfileParams) (bool, error) {
	args := m.Called(ctx, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) UpdateUserEmail(ctx context.Context, id int64, email string) (bool, error) {
	args := m.Called(ctx, id, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) DeleteUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) DeactivateUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) InsertGrant(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	args := m.Called(ctx, ownerID, viewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) DeleteGrant(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	args := m.Called(ctx, ownerID, viewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) GrantExists(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	args := m.Called(ctx, ownerID, viewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) ListViewers(ctx context.Context, ownerID int64) ([]models.Viewer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Viewer), args.Error(1)
}

func (m *MockQuerier) LogEvent(ctx context.Context, userID int64, eventType string, payload interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, userID, eventType, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockQuerier) GetEventsSince(ctx context.Context, userID, sinceID int64, limit int) ([]models.Event, error) {
	args := m.Called(ctx, userID, sinceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockQuerier) CreateSession(ctx context.Context, arg database.CreateSessionParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockQuerier) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockQuerier) ListSessionsForUser(ctx context.Context, userID int64) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockQuerier) DeleteSessionByID(ctx context.Context, sessionID uuid.UUID, userID int64) (bool, error) {
	args := m.Called(ctx, sessionID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuerier) DeleteAllSessionsForUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) DeleteSessionByRefreshToken(ctx context.Context, userID int64, refreshToken string) (bool, error) {
	args := m.Called(ctx, userID, refreshToken)
	return args.Bool(0), args.Error(1)
}

// fakeStore runs every unit of work directly against the mock.
type fakeStore struct {
	q *MockQuerier
}

func (s fakeStore) ExecTx(_ context.Context, fn func(database.Querier) error) error {
	return fn(s.q)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Matches(password, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) SendEmailChange(ctx context.Context, userID int64, newEmail string) error {
	args := m.Called(ctx, userID, newEmail)
	return args.Error(0)
}

type MockChallenges struct {
	mock.Mock
}

func (m *MockChallenges) Lookup(ctx context.Context, token string) (int64, string, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.String(1), args.Bool(2), args.Error(3)
}

func (m *MockChallenges) Consume(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type published struct {
	userID int64
	data   []byte
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) PublishEvent(userID int64, eventData []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{userID: userID, data: eventData})
}

func strPtr(s string) *string {
	return &s
}
