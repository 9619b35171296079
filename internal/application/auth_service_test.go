package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
)

func newTestAuth() (*AuthService, *VerificationService) {
	store := kvstore.NewMemoryStore()
	logger := testLogger()
	verif := NewVerificationService(store, logger, &captureMailer{}, 10*time.Minute, 3)
	return NewAuthService(store, logger, verif), verif
}

func TestBootstrapCreatesDefaultAccounts(t *testing.T) {
	svc, verif := newTestAuth()
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))
	users := svc.AllUsers(ctx)
	require.Len(t, users, 2)

	roles := map[string]entity.Role{}
	for _, u := range users {
		roles[u.Username] = u.Role
		assert.Empty(t, u.Password, "listing must not expose credential hashes")
	}
	assert.Equal(t, entity.RoleAdmin, roles["admin"])
	assert.Equal(t, entity.RoleUser, roles["demo"])

	// Bootstrap accounts bypass the code flow but count as verified.
	assert.True(t, verif.IsVerified(ctx, "admin@admin.com"))
	assert.True(t, verif.IsVerified(ctx, "demo@demo.com"))

	// Rerunning against a populated store is a no-op.
	require.NoError(t, svc.Bootstrap(ctx))
	assert.Len(t, svc.AllUsers(ctx), 2)

	_, err := svc.Login(ctx, "admin", "admin123")
	assert.NoError(t, err)
}

func TestRegisterRequiresVerifiedEmail(t *testing.T) {
	svc, verif := newTestAuth()
	ctx := context.Background()

	_, err := svc.Register(ctx, entity.NewUser{Username: "cali", Email: "cali@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	verif.MarkVerified(ctx, "cali@example.com")
	u, err := svc.Register(ctx, entity.NewUser{Username: "cali", Email: "cali@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.Empty(t, u.Password)
	assert.NotEmpty(t, u.ID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, verif := newTestAuth()
	ctx := context.Background()

	verif.MarkVerified(ctx, "a@example.com")
	verif.MarkVerified(ctx, "b@example.com")
	_, err := svc.Register(ctx, entity.NewUser{Username: "asha", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, entity.NewUser{Username: "asha", Email: "b@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(ctx, entity.NewUser{Username: "other", Email: "a@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	svc, verif := newTestAuth()
	ctx := context.Background()

	verif.MarkVerified(ctx, "warsame@example.com")
	_, err := svc.Register(ctx, entity.NewUser{Username: "warsame", Email: "warsame@example.com", Password: "secret77"})
	require.NoError(t, err)

	byName, err := svc.Login(ctx, "warsame", "secret77")
	require.NoError(t, err)
	assert.NotNil(t, byName.LastLogin)
	assert.Empty(t, byName.Password)

	byEmail, err := svc.Login(ctx, "warsame@example.com", "secret77")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	// Surrounding whitespace in the submitted identity is tolerated.
	_, err = svc.Login(ctx, "  warsame  ", "secret77")
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, verif := newTestAuth()
	ctx := context.Background()

	verif.MarkVerified(ctx, "k@example.com")
	_, err := svc.Register(ctx, entity.NewUser{Username: "koos", Email: "k@example.com", Password: "secret77"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "koos", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "secret77")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionDocumentLifecycle(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUserNotFound)

	logged, err := svc.Login(ctx, "demo", "demo123")
	require.NoError(t, err)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, logged.ID, current.ID)
	assert.Empty(t, current.Password)

	svc.Logout(ctx)
	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPromoteToAdmin(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))
	demo, err := svc.GetByID(ctx, "user_demo")
	require.NoError(t, err)
	require.Equal(t, entity.RoleUser, demo.Role)

	assert.True(t, svc.PromoteToAdmin(ctx, demo.ID))
	promoted, err := svc.GetByID(ctx, demo.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)

	assert.False(t, svc.PromoteToAdmin(ctx, "missing-id"))
}
