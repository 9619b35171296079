package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Dispatcher delivers a verification code to an email address. The store
// layer only depends on this interface; delivery may be simulated, direct
// via Mailgun, or queued through RabbitMQ for the email worker.
type Dispatcher interface {
	SendVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error
}

// VerificationSubject and verificationBody compose the Somali-language
// verification email shared by every dispatcher.
const VerificationSubject = "Lambarka xaqiijinta Qaamuuska"

func verificationBody(code string, expiresAt time.Time) string {
	return fmt.Sprintf(
		"Lambarkaaga xaqiijintu waa: %s\n\nLambarku wuxuu dhacayaa %s. Haddii aadan codsan lambarkan, iska daa email-kan.",
		code, expiresAt.UTC().Format(time.RFC3339))
}

// Simulated logs the code instead of sending it and waits a fixed delay to
// mimic network latency. It always succeeds. Default when sending is disabled.
type Simulated struct {
	Logger *logrus.Logger
	Delay  time.Duration
}

func NewSimulated(logger *logrus.Logger) *Simulated {
	return &Simulated{Logger: logger, Delay: time.Second}
}

func (s *Simulated) SendVerificationCode(ctx context.Context, email, code string, _ time.Time) error {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"email": email, "code": code}).
			Info("simulated verification email sent")
	}
	return nil
}

// Direct sends the verification email synchronously through Mailgun.
type Direct struct {
	MG *Mailgun
}

func NewDirect(mg *Mailgun) *Direct { return &Direct{MG: mg} }

func (d *Direct) SendVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	return d.MG.Send(ctx, email, VerificationSubject, verificationBody(code, expiresAt), "")
}
