package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCredentialsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Credentials().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	now := time.Now().UTC()
	cred := domain.Credential{
		Email:        "admin@example.com",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Credentials().CreateCredential(ctx, cred))

	got, err := s.Credentials().GetCredentialByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, cred.Email, got.Email)
	require.Equal(t, cred.PasswordHash, got.PasswordHash)

	_, err = s.Credentials().GetCredentialByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCredentialsUpdatePasswordHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, s.Credentials().CreateCredential(ctx, domain.Credential{
		Email:        "admin@example.com",
		PasswordHash: "old-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	require.NoError(t, s.Credentials().UpdatePasswordHash(ctx, "admin@example.com", "new-hash"))

	got, err := s.Credentials().GetCredentialByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)

	err = s.Credentials().UpdatePasswordHash(ctx, "nobody@example.com", "new-hash")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := domain.Session{
		ID:        idx.New().String(),
		TokenHash: "fingerprint-1",
		Email:     "admin@example.com",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))

	got, err := s.Sessions().GetSessionByTokenHash(ctx, "fingerprint-1")
	require.NoError(t, err)
	require.Equal(t, sess.Email, got.Email)
	require.Equal(t, sess.ID, got.ID)

	require.NoError(t, s.Sessions().DeleteSessionByTokenHash(ctx, "fingerprint-1"))

	_, err = s.Sessions().GetSessionByTokenHash(ctx, "fingerprint-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Second delete reports not found; the service layer treats that as
	// idempotent success.
	err = s.Sessions().DeleteSessionByTokenHash(ctx, "fingerprint-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: "expired",
		Email:     "admin@example.com",
		CreatedAt: now.Add(-48 * time.Hour),
		ExpiresAt: now.Add(-24 * time.Hour),
	}))
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: "live",
		Email:     "admin@example.com",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}))

	require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx))

	_, err := s.Sessions().GetSessionByTokenHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Sessions().GetSessionByTokenHash(ctx, "live")
	require.NoError(t, err)
}

func insertExperience(t *testing.T, s *Store, startDate string) domain.Experience {
	t.Helper()

	now := time.Now().UTC()
	e := domain.Experience{
		ID:          idx.New().String(),
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   startDate,
		Description: "Did things",
		Skills:      []string{"Go", "SQL"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Experiences().CreateExperience(context.Background(), e))
	return e
}

func TestExperiencesListOrdersByStartDateDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Insert out of chronological order on purpose.
	insertExperience(t, s, "2021-08")
	insertExperience(t, s, "2025-07")
	insertExperience(t, s, "2023-12")

	got, err := s.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "2025-07", got[0].StartDate)
	require.Equal(t, "2023-12", got[1].StartDate)
	require.Equal(t, "2021-08", got[2].StartDate)
}

func TestExperiencesListTieBreakIsStable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := insertExperience(t, s, "2024-01")
	second := insertExperience(t, s, "2024-01")

	got, err := s.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ULIDs are time-ordered, so the later insert wins the DESC tie-break.
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)

	again, err := s.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Equal(t, got[0].ID, again[0].ID)
	require.Equal(t, got[1].ID, again[1].ID)
}

func TestExperiencesCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e := insertExperience(t, s, "2020-01")

	got, err := s.Experiences().GetExperienceByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "SQL"}, got.Skills)
	require.Empty(t, got.EndDate)

	got.Position = "Senior Engineer"
	got.EndDate = "2022-06"
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.Experiences().UpdateExperience(ctx, got))

	updated, err := s.Experiences().GetExperienceByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", updated.Position)
	require.Equal(t, "2022-06", updated.EndDate)

	require.NoError(t, s.Experiences().DeleteExperience(ctx, e.ID))
	require.ErrorIs(t, s.Experiences().DeleteExperience(ctx, e.ID), store.ErrNotFound)

	_, err = s.Experiences().GetExperienceByID(ctx, e.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	missing := got
	missing.ID = idx.New().String()
	require.ErrorIs(t, s.Experiences().UpdateExperience(ctx, missing), store.ErrNotFound)
}

func TestExperiencesEmptySkillsDecodeToEmptySlice(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	e := domain.Experience{
		ID:          idx.New().String(),
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		Description: "Did things",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Experiences().CreateExperience(ctx, e))

	got, err := s.Experiences().GetExperienceByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Skills)
	require.Empty(t, got.Skills)
}
