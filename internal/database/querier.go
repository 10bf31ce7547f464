package database

import (
	"context"
	"encoding/json"

	"social-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Querier is the set of statements available inside a unit of work.
type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) (bool, error)
	UpdateUserEmail(ctx context.Context, id int64, email string) (bool, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	DeactivateUser(ctx context.Context, id int64) (bool, error)

	InsertGrant(ctx context.Context, ownerID, viewerID int64) (bool, error)
	DeleteGrant(ctx context.Context, ownerID, viewerID int64) (bool, error)
	GrantExists(ctx context.Context, ownerID, viewerID int64) (bool, error)
	ListViewers(ctx context.Context, ownerID int64) ([]models.Viewer, error)

	LogEvent(ctx context.Context, userID int64, eventType string, payload interface{}) (json.RawMessage, error)
	GetEventsSince(ctx context.Context, userID, sinceID int64, limit int) ([]models.Event, error)

	CreateSession(ctx context.Context, arg CreateSessionParams) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	ListSessionsForUser(ctx context.Context, userID int64) ([]models.Session, error)
	DeleteSessionByRefreshToken(ctx context.Context, userID int64, refreshToken string) (bool, error)
	DeleteSessionByID(ctx context.Context, sessionID uuid.UUID, userID int64) (bool, error)
	DeleteAllSessionsForUser(ctx context.Context, userID int64) (int64, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

var _ Querier = (*Queries)(nil)
