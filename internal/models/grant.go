package models

import "time"

type VisibilityGrant struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	ViewerID  int64     `json:"viewer_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// Viewer is a user an owner has revealed their first name to.
type Viewer struct {
	UserID    int64     `json:"user_id"`
	Username  *string   `json:"username,omitempty"`
	GrantedAt time.Time `json:"granted_at"`
}
