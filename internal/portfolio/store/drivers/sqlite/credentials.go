package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
)

type credentialsRepo struct {
	db *sql.DB
}

func (r *credentialsRepo) GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT email, password_hash, created_at, updated_at
		FROM credentials
		WHERE email = ?`, email)

	var c domain.Credential
	if err := row.Scan(&c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return c, nil
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		c.Email, c.PasswordHash, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	return err
}

func (r *credentialsRepo) UpdatePasswordHash(ctx context.Context, email, newHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE credentials
		SET password_hash = ?, updated_at = ?
		WHERE email = ?`,
		newHash, time.Now().UTC(), email)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *credentialsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
