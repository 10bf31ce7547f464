package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     *string   `json:"username,omitempty" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    *string   `json:"first_name,omitempty" db:"first_name"`
	About        *string   `json:"about,omitempty" db:"about"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicProfile is what other users see. FirstName is nil unless the owner
// granted the viewer visibility.
type PublicProfile struct {
	ID        int64   `json:"id" example:"7"`
	Username  *string `json:"username,omitempty" example:"jane_412"`
	FirstName *string `json:"first_name,omitempty" example:"Jane"`
	About     *string `json:"about,omitempty" example:"Climber, coffee person."`
	IsActive  bool    `json:"is_active" example:"true"`
}
