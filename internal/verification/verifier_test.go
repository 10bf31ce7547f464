package verification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newTestVerifier(t *testing.T, mailer Mailer) (*Verifier, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	v, err := NewVerifier(rdb, mailer, 10*time.Minute, "https://example.com/confirm")
	require.NoError(t, err)
	return v, mr
}

func tokenFromBody(t *testing.T, body string) string {
	t.Helper()
	_, token, ok := strings.Cut(body, "?token=")
	require.True(t, ok, "mail body should carry the confirmation link")
	return strings.TrimSpace(token)
}

func TestSendEmailChange_StoresChallengeAndMails(t *testing.T) {
	mailer := &recordingMailer{}
	v, mr := newTestVerifier(t, mailer)

	err := v.SendEmailChange(context.Background(), 42, "new@example.com")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	require.Equal(t, "new@example.com", mailer.sent[0].to)
	require.Contains(t, mailer.sent[0].body, "https://example.com/confirm?token=")

	token := tokenFromBody(t, mailer.sent[0].body)
	require.True(t, mr.Exists(keyPrefix+token))
	require.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+token))
}

func TestLookupAndConsume(t *testing.T) {
	mailer := &recordingMailer{}
	v, mr := newTestVerifier(t, mailer)
	ctx := context.Background()

	require.NoError(t, v.SendEmailChange(ctx, 7, "moved@example.com"))
	token := tokenFromBody(t, mailer.sent[0].body)

	for i := 0; i < 2; i++ {
		userID, email, found, err := v.Lookup(ctx, token)
		require.NoError(t, err)
		require.True(t, found, "lookup does not spend the token")
		require.Equal(t, int64(7), userID)
		require.Equal(t, "moved@example.com", email)
	}

	require.NoError(t, v.Consume(ctx, token))
	require.False(t, mr.Exists(keyPrefix+token))

	_, _, found, err := v.Lookup(ctx, token)
	require.NoError(t, err)
	require.False(t, found, "a consumed token must not be accepted again")

	require.NoError(t, v.Consume(ctx, token))
}

func TestLookup_Expired(t *testing.T) {
	mailer := &recordingMailer{}
	v, mr := newTestVerifier(t, mailer)
	ctx := context.Background()

	require.NoError(t, v.SendEmailChange(ctx, 7, "late@example.com"))
	token := tokenFromBody(t, mailer.sent[0].body)

	mr.FastForward(11 * time.Minute)

	_, _, found, err := v.Lookup(ctx, token)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSendEmailChange_MailerFailureDropsChallenge(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	v, mr := newTestVerifier(t, mailer)

	err := v.SendEmailChange(context.Background(), 1, "x@example.com")
	require.Error(t, err)
	require.Empty(t, mr.Keys())
}
