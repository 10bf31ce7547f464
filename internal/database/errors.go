package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken    = errors.New("an account with that email address already exists")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrUserNotFound  = errors.New("referenced user does not exist")
)

// classify turns constraint violations into the package sentinels and
// passes every other error through untouched.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case "users_email_key":
			return ErrEmailTaken
		case "users_username_key":
			return ErrUsernameTaken
		}
	case pgerrcode.ForeignKeyViolation:
		return ErrUserNotFound
	}

	return err
}
