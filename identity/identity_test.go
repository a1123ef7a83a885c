package identity

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kacip-storefront/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("test-secret")

func newLocalBackend(t *testing.T) *LocalBackend {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "identity.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	b, err := NewLocalBackend(db, NewTokenIssuer(testSecret, time.Hour))
	require.NoError(t, err)
	return b
}

// ── Local backend ───────────────────────────────────────────────────────────

func TestLocalBackend_RegisterLoginCurrentUser(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)

	registered, token, err := b.Register(ctx, "Aina", " Aina@Example.com ", "secret1", "012-3456789")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, registered.Role)
	assert.Equal(t, "aina@example.com", registered.Email)
	assert.NotEmpty(t, token)

	id, token, err := b.Login(ctx, "aina@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered, id)
	assert.False(t, id.IsAdmin())

	current, err := b.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered, current)
}

func TestLocalBackend_BadCredentials(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)
	require.NoError(t, b.EnsureUser(ctx, "Admin User", "admin@kacip.com", "admin123", models.RoleAdmin))

	_, _, err := b.Login(ctx, "admin@kacip.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = b.Login(ctx, "nobody@kacip.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalBackend_EnsureUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)

	require.NoError(t, b.EnsureUser(ctx, "Admin User", "admin@kacip.com", "admin123", models.RoleAdmin))
	require.NoError(t, b.EnsureUser(ctx, "Admin User", "admin@kacip.com", "other", models.RoleAdmin))

	id, _, err := b.Login(ctx, "admin@kacip.com", "admin123")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin())

	_, _, err = b.Register(ctx, "Impostor", "admin@kacip.com", "x", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.Error(t, b.EnsureUser(ctx, "Barista", "barista@kacip.com", "x", "barista"))
}

func TestLocalBackend_LogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)
	_, token, err := b.Register(ctx, "Daniel", "daniel@example.com", "secret1", "")
	require.NoError(t, err)

	require.NoError(t, b.Logout(ctx, token))
	require.NoError(t, b.Logout(ctx, token), "second revoke is a no-op")

	_, err = b.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// a fresh login is unaffected by the old revocation
	_, fresh, err := b.Login(ctx, "daniel@example.com", "secret1")
	require.NoError(t, err)
	_, err = b.CurrentUser(ctx, fresh)
	assert.NoError(t, err)
}

func TestLocalBackend_PurgeRevoked(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)
	_, token, err := b.Register(ctx, "Mei", "mei@example.com", "secret1", "")
	require.NoError(t, err)
	require.NoError(t, b.Logout(ctx, token))

	n, err := b.PurgeRevoked(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = b.PurgeRevoked(ctx, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Minute)
	now := time.Now()
	issuer.now = func() time.Time { return now }

	token, claims, err := issuer.Generate(&models.User{ID: 7, Email: "x@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)

	issuer.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewTokenIssuer([]byte("other"), time.Hour).Generate(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenIssuer(testSecret, time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer(testSecret, time.Hour).Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// ── Demo backend ────────────────────────────────────────────────────────────

func TestDemoBackend(t *testing.T) {
	ctx := context.Background()
	b := NewDemoBackend(0)

	_, _, err := b.Login(ctx, DemoEmail, "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	id, token, err := b.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", id.Name)
	assert.True(t, id.IsAdmin())

	current, err := b.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, current)

	require.NoError(t, b.Logout(ctx, token))
	_, err = b.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDemoBackend_HonoursContext(t *testing.T) {
	b := NewDemoBackend(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := b.Login(ctx, DemoEmail, DemoPassword)
	assert.ErrorIs(t, err, context.Canceled)
}
