package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix   = "email_change:"
	tokenLength = 32
)

// Mailer delivers a plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type challenge struct {
	UserID   int64  `json:"user_id"`
	NewEmail string `json:"new_email"`
}

// Verifier stores single-use email-change challenges in redis and mails the
// confirmation link to the new address.
type Verifier struct {
	rdb      *redis.Client
	mailer   Mailer
	ttl      time.Duration
	linkBase string
	newToken func() string
}

func NewVerifier(rdb *redis.Client, mailer Mailer, ttl time.Duration, linkBase string) (*Verifier, error) {
	generateID, err := nanoid.Standard(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	return &Verifier{
		rdb:      rdb,
		mailer:   mailer,
		ttl:      ttl,
		linkBase: linkBase,
		newToken: generateID,
	}, nil
}

func (v *Verifier) SendEmailChange(ctx context.Context, userID int64, newEmail string) error {
	data, err := json.Marshal(challenge{UserID: userID, NewEmail: newEmail})
	if err != nil {
		return err
	}

	token := v.newToken()
	if err := v.rdb.Set(ctx, keyPrefix+token, data, v.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store email change challenge: %w", err)
	}

	body := fmt.Sprintf(
		"Someone asked to move their account to this address.\n\nConfirm within %s:\n%s?token=%s\n",
		v.ttl, v.linkBase, url.QueryEscape(token),
	)
	if err := v.mailer.Send(ctx, newEmail, "Confirm your new email address", body); err != nil {
		v.rdb.Del(ctx, keyPrefix+token)
		return fmt.Errorf("failed to send email change challenge: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("email change challenge sent")
	return nil
}

// Lookup returns the pending challenge for token without spending it.
func (v *Verifier) Lookup(ctx context.Context, token string) (int64, string, bool, error) {
	data, err := v.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, "", false, nil
		}
		return 0, "", false, err
	}

	var c challenge
	if err := json.Unmarshal(data, &c); err != nil {
		return 0, "", false, fmt.Errorf("corrupt email change challenge: %w", err)
	}

	return c.UserID, c.NewEmail, true, nil
}

// Consume spends token so it cannot be confirmed again. Unknown tokens are
// ignored.
func (v *Verifier) Consume(ctx context.Context, token string) error {
	if err := v.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to consume email change challenge: %w", err)
	}
	return nil
}
