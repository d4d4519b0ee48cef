package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/stefanramac/portfolio/pkg/cryptox"
	"github.com/stefanramac/portfolio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "portfolio-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func provisionAdmin(t *testing.T, st store.Store, email, password string) {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, st.Credentials().CreateCredential(context.Background(), domain.Credential{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
}

func TestLoginIssuesValidatableSession(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := auth.Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}

	_, err := auth.Login(context.Background(), "admin@example.com", "not-the-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownIdentityFailsClosed(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}

	_, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsExpiredSession(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	// A session whose full 24h lifetime has already elapsed.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	created := time.Now().UTC().Add(-DefaultSessionTTL - time.Hour)
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		Email:     "admin@example.com",
		CreatedAt: created,
		ExpiresAt: created.Add(DefaultSessionTTL),
	}))

	_, err = auth.Validate(ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateRejectsUnknownAndEmptyTokens(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	ctx := context.Background()

	_, err := auth.Validate(ctx, "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = auth.Validate(ctx, "no-such-token")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogoutIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, token))

	_, err = auth.Validate(ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Revoking again is not an error.
	require.NoError(t, auth.Logout(ctx, token))
}

func TestConcurrentSessionsStayValid(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}
	ctx := context.Background()

	first, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	second, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// A new login does not revoke prior sessions.
	_, err = auth.Validate(ctx, first)
	require.NoError(t, err)
	_, err = auth.Validate(ctx, second)
	require.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}
	ctx := context.Background()

	err := auth.ChangePassword(ctx, "admin@example.com", "admin123", "newpass", "different")
	require.ErrorIs(t, err, ErrValidation)

	err = auth.ChangePassword(ctx, "admin@example.com", "admin123", "short", "short")
	require.ErrorIs(t, err, ErrValidation)

	err = auth.ChangePassword(ctx, "admin@example.com", "wrong-current", "newpass123", "newpass123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// The stored hash is untouched after every failure above.
	_, err = auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
}

func TestChangePasswordReplacesHash(t *testing.T) {
	st := newTestStore(t)
	provisionAdmin(t, st, "admin@example.com", "admin123")
	auth := &AuthService{Store: st}
	ctx := context.Background()

	require.NoError(t, auth.ChangePassword(ctx, "admin@example.com", "admin123", "newpass123", "newpass123"))

	_, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "admin@example.com", "newpass123")
	require.NoError(t, err)
}
