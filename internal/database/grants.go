package database

import (
	"context"

	"social-backend/internal/models"
)

// InsertGrant records that viewerID may see ownerID's first name. It reports
// false when the pair was already granted.
func (q *Queries) InsertGrant(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	query := `
		INSERT INTO visible_first_names (owner_id, viewer_id)
		VALUES ($1, $2)
		ON CONFLICT (owner_id, viewer_id) DO NOTHING
	`
	res, err := q.db.Exec(ctx, query, ownerID, viewerID)
	if err != nil {
		return false, classify(err)
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteGrant(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	query := `DELETE FROM visible_first_names WHERE owner_id = $1 AND viewer_id = $2`
	res, err := q.db.Exec(ctx, query, ownerID, viewerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) GrantExists(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM visible_first_names
			WHERE owner_id = $1 AND viewer_id = $2
		)
	`
	var exists bool
	err := q.db.QueryRow(ctx, query, ownerID, viewerID).Scan(&exists)
	return exists, err
}

func (q *Queries) ListViewers(ctx context.Context, ownerID int64) ([]models.Viewer, error) {
	query := `
		SELECT u.id, u.username, v.granted_at
		FROM visible_first_names v
		JOIN users u ON u.id = v.viewer_id
		WHERE v.owner_id = $1
		ORDER BY v.granted_at DESC, v.id DESC
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var viewers []models.Viewer
	for rows.Next() {
		var viewer models.Viewer
		if err := rows.Scan(&viewer.UserID, &viewer.Username, &viewer.GrantedAt); err != nil {
			return nil, err
		}
		viewers = append(viewers, viewer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if viewers == nil {
		return []models.Viewer{}, nil
	}

	return viewers, nil
}
