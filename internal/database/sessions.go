package database

import (
	"context"
	"time"

	"social-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateSessionParams struct {
	ID           uuid.UUID
	UserID       int64
	RefreshToken string
	UserAgent    string
	ClientIP     string
	ExpiresAt    time.Time
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) error {
	query := `
		INSERT INTO sessions (id, user_id, refresh_token, user_agent, client_ip, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.db.Exec(ctx, query, arg.ID, arg.UserID, arg.RefreshToken, arg.UserAgent, arg.ClientIP, arg.ExpiresAt)
	return classify(err)
}

// DeleteSessionByRefreshToken ends the session of userID holding refreshToken.
func (q *Queries) DeleteSessionByRefreshToken(ctx context.Context, userID int64, refreshToken string) (bool, error) {
	n, err := q.deleteSessions(ctx, `user_id = $1 AND refresh_token = $2`, userID, refreshToken)
	return n > 0, err
}

// GetUserByRefreshToken returns the owner of an unexpired session, or nil.
func (q *Queries) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	query := `
		SELECT ` + prefixed("u", userColumns) + `
		FROM users u
		JOIN sessions s ON u.id = s.user_id
		WHERE s.refresh_token = $1 AND s.expires_at > NOW()
	`
	return scanUser(q.db.QueryRow(ctx, query, refreshToken))
}

// ListSessionsForUser returns the unexpired sessions of userID, newest first.
func (q *Queries) ListSessionsForUser(ctx context.Context, userID int64) ([]models.Session, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, user_id, user_agent, client_ip, expires_at, created_at
		FROM sessions
		WHERE user_id = $1 AND expires_at > NOW()
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Session, error) {
		var s models.Session
		err := row.Scan(&s.ID, &s.UserID, &s.UserAgent, &s.ClientIP, &s.ExpiresAt, &s.CreatedAt)
		return s, err
	})
}

func (q *Queries) DeleteSessionByID(ctx context.Context, sessionID uuid.UUID, userID int64) (bool, error) {
	n, err := q.deleteSessions(ctx, `id = $1 AND user_id = $2`, sessionID, userID)
	return n > 0, err
}

func (q *Queries) DeleteAllSessionsForUser(ctx context.Context, userID int64) (int64, error) {
	return q.deleteSessions(ctx, `user_id = $1`, userID)
}

func (q *Queries) deleteSessions(ctx context.Context, where string, args ...interface{}) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM sessions WHERE `+where, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
