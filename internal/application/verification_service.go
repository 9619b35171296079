package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	repo "github.com/suugaanle/qaamuus/internal/domain/repository"
	"github.com/suugaanle/qaamuus/pkg/helpers"
	"github.com/suugaanle/qaamuus/pkg/mailer"
)

var (
	ErrCodeNotFound    = errors.New("no verification code for this email")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrCodeMismatch    = errors.New("verification code mismatch")
)

// VerificationService owns pending one-time codes and the verified-emails
// set. Now is injectable so expiry behavior is testable.
type VerificationService struct {
	Store       repo.DocumentStore
	Logger      *logrus.Logger
	Mail        mailer.Dispatcher
	CodeTTL     time.Duration
	MaxAttempts int
	Now         func() time.Time
	mu          sync.Mutex
}

func NewVerificationService(store repo.DocumentStore, logger *logrus.Logger, mail mailer.Dispatcher, codeTTL time.Duration, maxAttempts int) *VerificationService {
	if codeTTL <= 0 {
		codeTTL = 10 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &VerificationService{
		Store:       store,
		Logger:      logger,
		Mail:        mail,
		CodeTTL:     codeTTL,
		MaxAttempts: maxAttempts,
		Now:         time.Now,
	}
}

// SendCode issues a fresh 6-digit code for the email, overwriting any prior
// code, and hands it to the dispatcher. The attempt counter starts at zero.
func (s *VerificationService) SendCode(ctx context.Context, email string) (time.Time, error) {
	code, err := helpers.GenVerificationCode()
	if err != nil {
		return time.Time{}, err
	}
	vc := entity.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: s.Now().Add(s.CodeTTL),
		Attempts:  0,
	}

	s.mu.Lock()
	codes := loadCollection[entity.VerificationCode](ctx, s.Store, keyCodes, s.Logger)
	replaced := false
	for i := range codes {
		if codes[i].Email == email {
			codes[i] = vc
			replaced = true
			break
		}
	}
	if !replaced {
		codes = append(codes, vc)
	}
	err = saveCollection(ctx, s.Store, keyCodes, codes, s.Logger)
	s.mu.Unlock()
	if err != nil {
		return time.Time{}, err
	}

	if err := s.Mail.SendVerificationCode(ctx, email, code, vc.ExpiresAt); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("verification email dispatch failed")
		}
		return time.Time{}, err
	}
	return vc.ExpiresAt, nil
}

// VerifyCode redeems a code. On success the email joins the verified set and
// the code is destroyed; a redeemed code can never be redeemed again. On a
// mismatch the attempt counter is incremented and the remaining attempts are
// reported alongside ErrCodeMismatch.
func (s *VerificationService) VerifyCode(ctx context.Context, email, input string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := loadCollection[entity.VerificationCode](ctx, s.Store, keyCodes, s.Logger)
	idx := -1
	for i := range codes {
		if codes[i].Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, ErrCodeNotFound
	}
	vc := codes[idx]

	if vc.Expired(s.Now()) {
		codes = append(codes[:idx], codes[idx+1:]...)
		_ = saveCollection(ctx, s.Store, keyCodes, codes, s.Logger)
		return 0, ErrCodeExpired
	}
	if vc.Attempts >= s.MaxAttempts {
		return 0, ErrTooManyAttempts
	}

	if vc.Code == input {
		s.markVerifiedLocked(ctx, email)
		codes = append(codes[:idx], codes[idx+1:]...)
		_ = saveCollection(ctx, s.Store, keyCodes, codes, s.Logger)
		return 0, nil
	}

	codes[idx].Attempts++
	_ = saveCollection(ctx, s.Store, keyCodes, codes, s.Logger)
	return s.MaxAttempts - codes[idx].Attempts, ErrCodeMismatch
}

// IsVerified reports whether the email has completed verification.
func (s *VerificationService) IsVerified(ctx context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range loadCollection[string](ctx, s.Store, keyVerifiedEmails, s.Logger) {
		if e == email {
			return true
		}
	}
	return false
}

// MarkVerified adds the email to the verified set. Idempotent; used directly
// by account bootstrap, which bypasses the code flow.
func (s *VerificationService) MarkVerified(ctx context.Context, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markVerifiedLocked(ctx, email)
}

func (s *VerificationService) markVerifiedLocked(ctx context.Context, email string) {
	verified := loadCollection[string](ctx, s.Store, keyVerifiedEmails, s.Logger)
	for _, e := range verified {
		if e == email {
			return
		}
	}
	verified = append(verified, email)
	_ = saveCollection(ctx, s.Store, keyVerifiedEmails, verified, s.Logger)
}

// SweepExpired discards codes past their expiry and reports how many were
// dropped. Housekeeping only; VerifyCode checks expiry independently.
func (s *VerificationService) SweepExpired(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := loadCollection[entity.VerificationCode](ctx, s.Store, keyCodes, s.Logger)
	now := s.Now()
	live := codes[:0:0]
	for _, vc := range codes {
		if !vc.Expired(now) {
			live = append(live, vc)
		}
	}
	dropped := len(codes) - len(live)
	if dropped > 0 {
		_ = saveCollection(ctx, s.Store, keyCodes, live, s.Logger)
	}
	return dropped
}
