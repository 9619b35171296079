package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
)

// captureMailer records the last dispatched code instead of sending it.
type captureMailer struct {
	email string
	code  string
	sent  int
}

func (m *captureMailer) SendVerificationCode(_ context.Context, email, code string, _ time.Time) error {
	m.email = email
	m.code = code
	m.sent++
	return nil
}

func newTestVerification() (*VerificationService, *captureMailer) {
	mail := &captureMailer{}
	svc := NewVerificationService(kvstore.NewMemoryStore(), testLogger(), mail, 10*time.Minute, 3)
	return svc, mail
}

func TestVerifyCodeHappyPath(t *testing.T) {
	svc, mail := newTestVerification()
	ctx := context.Background()

	expires, err := svc.SendCode(ctx, "aamina@example.com")
	require.NoError(t, err)
	assert.Equal(t, "aamina@example.com", mail.email)
	require.Len(t, mail.code, 6)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expires, time.Minute)

	assert.False(t, svc.IsVerified(ctx, "aamina@example.com"))

	remaining, err := svc.VerifyCode(ctx, "aamina@example.com", mail.code)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	assert.True(t, svc.IsVerified(ctx, "aamina@example.com"))

	// A redeemed code is destroyed and cannot be replayed.
	_, err = svc.VerifyCode(ctx, "aamina@example.com", mail.code)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyCodeUnknownEmail(t *testing.T) {
	svc, _ := newTestVerification()
	_, err := svc.VerifyCode(context.Background(), "nobody@example.com", "123456")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyCodeMismatchCountsDown(t *testing.T) {
	svc, mail := newTestVerification()
	ctx := context.Background()

	_, err := svc.SendCode(ctx, "x@example.com")
	require.NoError(t, err)
	wrong := "000000"
	if mail.code == wrong {
		wrong = "000001"
	}

	for want := 2; want >= 0; want-- {
		remaining, err := svc.VerifyCode(ctx, "x@example.com", wrong)
		assert.ErrorIs(t, err, ErrCodeMismatch)
		assert.Equal(t, want, remaining)
	}

	// The limit holds even when the correct code is finally supplied.
	_, err = svc.VerifyCode(ctx, "x@example.com", mail.code)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.False(t, svc.IsVerified(ctx, "x@example.com"))
}

func TestVerifyCodeExpired(t *testing.T) {
	svc, mail := newTestVerification()
	ctx := context.Background()

	_, err := svc.SendCode(ctx, "y@example.com")
	require.NoError(t, err)

	svc.Now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	_, err = svc.VerifyCode(ctx, "y@example.com", mail.code)
	assert.ErrorIs(t, err, ErrCodeExpired)

	// Expiry removes the record, so a retry no longer finds it.
	_, err = svc.VerifyCode(ctx, "y@example.com", mail.code)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestSendCodeReplacesPriorCode(t *testing.T) {
	svc, mail := newTestVerification()
	ctx := context.Background()

	_, err := svc.SendCode(ctx, "z@example.com")
	require.NoError(t, err)
	first := mail.code

	// Burn an attempt, then reissue; the counter must restart.
	if _, err := svc.VerifyCode(ctx, "z@example.com", "wrong0"); err == nil {
		t.Fatal("expected mismatch")
	}
	_, err = svc.SendCode(ctx, "z@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, mail.sent)

	if first != mail.code {
		_, err = svc.VerifyCode(ctx, "z@example.com", first)
		assert.ErrorIs(t, err, ErrCodeMismatch)
		_, err = svc.SendCode(ctx, "z@example.com")
		require.NoError(t, err)
	}
	_, err = svc.VerifyCode(ctx, "z@example.com", mail.code)
	assert.NoError(t, err)
}

func TestMarkVerifiedIsIdempotent(t *testing.T) {
	svc, _ := newTestVerification()
	ctx := context.Background()

	svc.MarkVerified(ctx, "w@example.com")
	svc.MarkVerified(ctx, "w@example.com")
	assert.True(t, svc.IsVerified(ctx, "w@example.com"))
	assert.False(t, svc.IsVerified(ctx, "other@example.com"))
}

func TestSweepExpired(t *testing.T) {
	svc, _ := newTestVerification()
	ctx := context.Background()

	_, err := svc.SendCode(ctx, "old@example.com")
	require.NoError(t, err)

	// Issue a second code later so only the first is stale after the clock
	// moves forward.
	svc.Now = func() time.Time { return time.Now().Add(8 * time.Minute) }
	_, err = svc.SendCode(ctx, "fresh@example.com")
	require.NoError(t, err)

	svc.Now = func() time.Time { return time.Now().Add(12 * time.Minute) }
	assert.Equal(t, 1, svc.SweepExpired(ctx))
	assert.Equal(t, 0, svc.SweepExpired(ctx))

	// The fresh code still redeems.
	_, err = svc.VerifyCode(ctx, "old@example.com", "123456")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
