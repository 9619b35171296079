package mailer

import (
	"context"
	"time"

	"github.com/suugaanle/qaamuus/pkg/helpers"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for the email
// worker. Subject/Text/HTML are fully composed by the publisher so the
// worker stays a dumb sender.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// Queued publishes verification emails to RabbitMQ instead of sending them
// inline; cmd/email_worker consumes the queue and delivers via Mailgun.
type Queued struct {
	Pub *helpers.RabbitPublisher
}

func NewQueued(pub *helpers.RabbitPublisher) *Queued { return &Queued{Pub: pub} }

func (q *Queued) SendVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	return q.Pub.PublishJSON(ctx, EmailJob{
		To:      email,
		Subject: VerificationSubject,
		Text:    verificationBody(code, expiresAt),
	})
}
