package database

import (
	"context"
	"errors"
	"strings"

	"social-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, username, password_hash, first_name, about, is_active, created_at`

// prefixed qualifies every column in a comma separated list with alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, c := range parts {
		parts[i] = alias + "." + c
	}
	return strings.Join(parts, ", ")
}

type CreateUserParams struct {
	Email        string
	Username     *string
	PasswordHash string
	FirstName    *string
	About        *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	query := `
		INSERT INTO users (email, username, password_hash, first_name, about)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := q.db.QueryRow(ctx, query, arg.Email, arg.Username, arg.PasswordHash, arg.FirstName, arg.About).Scan(&id)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.About,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.db.QueryRow(ctx, query, email))
}

// UpdateUserProfileParams carries the mutable profile fields. A nil field
// keeps the stored value.
type UpdateUserProfileParams struct {
	ID        int64
	Username  *string
	FirstName *string
	About     *string
}

func (q *Queries) UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) (bool, error) {
	query := `
		UPDATE users
		SET
			username = COALESCE($2, username),
			first_name = COALESCE($3, first_name),
			about = COALESCE($4, about)
		WHERE id = $1
	`
	res, err := q.db.Exec(ctx, query, arg.ID, arg.Username, arg.FirstName, arg.About)
	if err != nil {
		return false, classify(err)
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) UpdateUserEmail(ctx context.Context, id int64, email string) (bool, error) {
	query := `UPDATE users SET email = $2 WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id, email)
	if err != nil {
		return false, classify(err)
	}
	return res.RowsAffected() > 0, nil
}

// DeleteUser removes the user row. Grants, sessions and journal entries
// referencing it go with it through ON DELETE CASCADE.
func (q *Queries) DeleteUser(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeactivateUser(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE users SET is_active = FALSE WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
