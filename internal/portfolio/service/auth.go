package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/cryptox"
	"github.com/stefanramac/portfolio/pkg/idx"
)

// DefaultSessionTTL is the absolute session lifetime. Sessions are not
// renewed on activity.
const DefaultSessionTTL = 24 * time.Hour

// dummyHash keeps the login path doing a full argon2 comparison even when the
// identity does not exist, so response timing does not reveal which identities
// are provisioned. Never verifies.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthService owns credential verification and the session lifecycle.
type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies the credential and issues a new opaque session token. Each
// successful call issues exactly one session; prior sessions for the same
// identity stay valid.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	cred, err := s.Store.Credentials().GetCredentialByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		_ = cryptox.VerifyPassword(password, dummyHash)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}

	if err := cryptox.VerifyPassword(password, cred.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		Email:     cred.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// Validate resolves a session token to its bound identity. Expired or unknown
// tokens fail with ErrUnauthenticated; expiry is absolute and never extended.
func (s *AuthService) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		return "", ErrUnauthenticated
	}

	return session.Email, nil
}

// Logout revokes a session. Revoking an already-absent token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// ChangePassword replaces the credential's password after proving the current
// one. The mismatch of current password surfaces as ErrInvalidCredentials so
// the handler can map it to 401 rather than 400.
func (s *AuthService) ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error {
	if current == "" || newPassword == "" || confirm == "" {
		return fmt.Errorf("%w: all password fields are required", ErrValidation)
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: new passwords do not match", ErrValidation)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", ErrValidation)
	}

	cred, err := s.Store.Credentials().GetCredentialByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	if err := cryptox.VerifyPassword(current, cred.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Store.Credentials().UpdatePasswordHash(ctx, email, newHash)
}
