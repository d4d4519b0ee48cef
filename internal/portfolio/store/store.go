package store

import (
	"context"
	"errors"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Every operation touches at most one row, so there is no
// transaction surface here.
type Store interface {
	Credentials() Credentials
	Sessions() Sessions
	Experiences() Experiences

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Credentials interface {
	// GetCredentialByEmail returns the credential for an identity.
	GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error)

	// CreateCredential inserts a new credential at provisioning time.
	CreateCredential(ctx context.Context, c domain.Credential) error

	// UpdatePasswordHash replaces the password hash for an existing identity
	// and bumps updated_at. Returns ErrNotFound when the identity is absent.
	UpdatePasswordHash(ctx context.Context, email, newHash string) error

	// IsEmpty returns true when no credential has been provisioned yet.
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session for a token fingerprint.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// DeleteSessionByTokenHash removes a session. Returns ErrNotFound when
	// the fingerprint resolves to nothing; callers treating revocation as
	// idempotent ignore that.
	DeleteSessionByTokenHash(ctx context.Context, hash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type Experiences interface {
	// ListExperiences returns all records ordered start_date DESC with a
	// stable id DESC tie-break.
	ListExperiences(ctx context.Context) ([]domain.Experience, error)

	// GetExperienceByID returns one record.
	GetExperienceByID(ctx context.Context, id string) (domain.Experience, error)

	// CreateExperience inserts a new record (id is provided by the app via ULID).
	CreateExperience(ctx context.Context, e domain.Experience) error

	// UpdateExperience overwrites the mutable fields of an existing record
	// and stamps updated_at; created_at is preserved. Last writer wins.
	// Returns ErrNotFound when the id is absent.
	UpdateExperience(ctx context.Context, e domain.Experience) error

	// DeleteExperience hard-deletes a record. Returns ErrNotFound when the
	// id is absent.
	DeleteExperience(ctx context.Context, id string) error

	// IsEmpty returns true if there are no records.
	IsEmpty(ctx context.Context) (bool, error)
}
