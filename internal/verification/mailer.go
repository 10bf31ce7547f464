package verification

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogMailer writes outgoing mail to the log instead of delivering it.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("outgoing mail")
	return nil
}
