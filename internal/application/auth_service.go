package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	repo "github.com/suugaanle/qaamuus/internal/domain/repository"
	"github.com/suugaanle/qaamuus/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already taken")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns the accounts collection and the current-session document.
// Registration is gated on the verification service having verified the
// email beforehand.
type AuthService struct {
	Store  repo.DocumentStore
	Logger *logrus.Logger
	Verif  *VerificationService
	mu     sync.Mutex
}

func NewAuthService(store repo.DocumentStore, logger *logrus.Logger, verif *VerificationService) *AuthService {
	return &AuthService{Store: store, Logger: logger, Verif: verif}
}

type bootstrapAccount struct {
	username string
	email    string
	password string
	role     entity.Role
	created  time.Time
}

// Fixed first-run accounts, pre-marked verified so they bypass the code flow.
var bootstrapAccounts = []bootstrapAccount{
	{username: "admin", email: "admin@admin.com", password: "admin123", role: entity.RoleAdmin, created: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{username: "demo", email: "demo@demo.com", password: "demo123", role: entity.RoleUser, created: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
}

// Bootstrap creates the fixed default accounts when the users document is
// empty. Safe to call on every start.
func (s *AuthService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger)
	if len(users) > 0 {
		return nil
	}
	for _, acct := range bootstrapAccounts {
		hash, err := helpers.HashPassword(acct.password)
		if err != nil {
			return err
		}
		users = append(users, entity.User{
			ID:          "user_" + acct.username,
			Username:    acct.username,
			Email:       acct.email,
			Role:        acct.role,
			Password:    hash,
			DateCreated: acct.created,
		})
		if s.Verif != nil {
			s.Verif.MarkVerified(ctx, acct.email)
		}
	}
	if err := saveCollection(ctx, s.Store, keyUsers, users, s.Logger); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("accounts", len(users)).Info("bootstrapped default accounts")
	}
	return nil
}

// Register creates an account in active state with the standard role. It is
// rejected when the username or email is taken, or when the email has not
// completed verification.
func (s *AuthService) Register(ctx context.Context, in entity.NewUser) (entity.User, error) {
	in.Username = normalizeIdentity(in.Username)
	in.Email = normalizeIdentity(in.Email)
	if s.Verif != nil && !s.Verif.IsVerified(ctx, in.Email) {
		return entity.User{}, ErrEmailNotVerified
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger)
	for _, u := range users {
		if u.Username == in.Username || u.Email == in.Email {
			return entity.User{}, ErrUserExists
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return entity.User{}, err
	}
	user := entity.User{
		ID:          uuid.NewString(),
		Username:    in.Username,
		Email:       in.Email,
		Role:        entity.RoleUser,
		Password:    hash,
		DateCreated: time.Now().UTC(),
	}
	users = append(users, user)
	if err := saveCollection(ctx, s.Store, keyUsers, users, s.Logger); err != nil {
		return entity.User{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("username", user.Username).Info("user registered")
	}
	return user.Public(), nil
}

// Login authenticates by username or email. Unknown account and wrong secret
// are indistinguishable to the caller; both come back as
// ErrInvalidCredentials. On success the last-login timestamp is persisted and
// the public record is written as the current-session document.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (entity.User, error) {
	usernameOrEmail = normalizeIdentity(usernameOrEmail)

	s.mu.Lock()
	defer s.mu.Unlock()

	users := loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger)
	idx := -1
	for i := range users {
		if users[i].Username == usernameOrEmail || users[i].Email == usernameOrEmail {
			idx = i
			break
		}
	}
	if idx == -1 || !helpers.CheckPassword(users[idx].Password, password) {
		return entity.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	users[idx].LastLogin = &now
	_ = saveCollection(ctx, s.Store, keyUsers, users, s.Logger)

	session := users[idx].Public()
	if doc, err := json.Marshal(session); err == nil {
		if err := s.Store.Save(ctx, keyCurrentUser, doc); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("save session document failed")
		}
	}
	return session, nil
}

// Logout clears the current-session document.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.Store.Remove(ctx, keyCurrentUser); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("remove session document failed")
	}
}

// CurrentUser returns the last-authenticated account, if any. Presence of
// the session document alone implies "logged in"; there is no expiry.
func (s *AuthService) CurrentUser(ctx context.Context) (*entity.User, error) {
	doc, err := s.Store.Load(ctx, keyCurrentUser)
	if err != nil || doc == nil {
		return nil, ErrUserNotFound
	}
	var u entity.User
	if err := json.Unmarshal(doc, &u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("corrupt session document")
		}
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// GetByID looks up one account by identifier.
func (s *AuthService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger) {
		if u.ID == id {
			pub := u.Public()
			return &pub, nil
		}
	}
	return nil, ErrUserNotFound
}

// AllUsers lists every account without credential hashes.
func (s *AuthService) AllUsers(ctx context.Context) []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger)
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// PromoteToAdmin unconditionally flips the account's role. Authorization is
// the caller's concern; the operation itself performs no check.
func (s *AuthService) PromoteToAdmin(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := loadCollection[entity.User](ctx, s.Store, keyUsers, s.Logger)
	found := false
	for i := range users {
		if users[i].ID == id {
			users[i].Role = entity.RoleAdmin
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if err := saveCollection(ctx, s.Store, keyUsers, users, s.Logger); err != nil {
		return false
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user promoted to admin")
	}
	return true
}

// normalizeIdentity trims surrounding whitespace from a submitted username
// or email before lookup.
func normalizeIdentity(v string) string { return strings.TrimSpace(v) }
