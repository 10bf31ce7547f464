package database

import (
	"context"
	"encoding/json"
	"fmt"

	"social-backend/internal/models"
)

// LogEvent appends an entry to the user's event journal and returns the
// encoded message, ready to be pushed to live connections after commit.
func (q *Queries) LogEvent(ctx context.Context, userID int64, eventType string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", eventType, err)
	}

	var id int64
	err = q.db.QueryRow(ctx,
		`INSERT INTO event_journal (user_id, event_type, payload) VALUES ($1, $2, $3) RETURNING id`,
		userID, eventType, body,
	).Scan(&id)
	if err != nil {
		return nil, classify(err)
	}

	return json.Marshal(struct {
		ID        int64           `json:"id"`
		EventType string          `json:"event_type"`
		Payload   json.RawMessage `json:"payload"`
	}{id, eventType, body})
}

// MaxEventPage bounds a single journal replay.
const MaxEventPage = 100

// GetEventsSince replays the journal of userID after sinceID, oldest first.
// A limit outside 1..MaxEventPage is clamped to MaxEventPage.
func (q *Queries) GetEventsSince(ctx context.Context, userID, sinceID int64, limit int) ([]models.Event, error) {
	if limit <= 0 || limit > MaxEventPage {
		limit = MaxEventPage
	}

	rows, err := q.db.Query(ctx, `
		SELECT id, event_type, event_time, payload
		FROM event_journal
		WHERE user_id = $1 AND id > $2
		ORDER BY id
		LIMIT $3
	`, userID, sinceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0, limit)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.EventTime, &e.Payload); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
