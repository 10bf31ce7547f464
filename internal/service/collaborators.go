package service

import (
	"context"

	"social-backend/internal/database"
)

// UnitOfWork runs fn inside one transaction against the store.
type UnitOfWork interface {
	ExecTx(ctx context.Context, fn func(database.Querier) error) error
}

type CredentialHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool
}

// EmailVerifier dispatches an email-change challenge to the new address.
type EmailVerifier interface {
	SendEmailChange(ctx context.Context, userID int64, newEmail string) error
}

// EmailChallenges resolves challenges issued by an EmailVerifier. found is
// false for unknown, expired or consumed tokens.
type EmailChallenges interface {
	Lookup(ctx context.Context, token string) (userID int64, newEmail string, found bool, err error)
	Consume(ctx context.Context, token string) error
}

// EventPublisher pushes an encoded event to a user's live connections.
type EventPublisher interface {
	PublishEvent(userID int64, eventData []byte)
}
