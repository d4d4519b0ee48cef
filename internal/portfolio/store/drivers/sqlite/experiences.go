package sqlite

import (
	"context"
	"database/sql"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
)

type experiencesRepo struct {
	db *sql.DB
}

// Start dates are validated to "YYYY-MM" before they reach the store, so the
// lexical DESC order here is also chronological. ULID ids embed creation time,
// making the tie-break newest-created-first and stable across reads.
const listExperiencesQuery = `
	SELECT id, position, company, start_date, end_date, is_present,
	       description, skills, created_at, updated_at
	FROM experiences
	ORDER BY start_date DESC, id DESC`

func (r *experiencesRepo) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.db.QueryContext(ctx, listExperiencesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := make([]domain.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *experiencesRepo) GetExperienceByID(ctx context.Context, id string) (domain.Experience, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, position, company, start_date, end_date, is_present,
		       description, skills, created_at, updated_at
		FROM experiences
		WHERE id = ?`, id)

	e, err := scanExperience(row)
	if err != nil {
		return domain.Experience{}, mapNotFound(err)
	}
	return e, nil
}

func (r *experiencesRepo) CreateExperience(ctx context.Context, e domain.Experience) error {
	skills, err := encodeSkills(e.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO experiences (id, position, company, start_date, end_date,
		                         is_present, description, skills, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Position, e.Company, e.StartDate, mapStringNull(e.EndDate),
		e.IsPresent, e.Description, skills, e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	return err
}

func (r *experiencesRepo) UpdateExperience(ctx context.Context, e domain.Experience) error {
	skills, err := encodeSkills(e.Skills)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE experiences
		SET position = ?, company = ?, start_date = ?, end_date = ?,
		    is_present = ?, description = ?, skills = ?, updated_at = ?
		WHERE id = ?`,
		e.Position, e.Company, e.StartDate, mapStringNull(e.EndDate),
		e.IsPresent, e.Description, skills, e.UpdatedAt.UTC(), e.ID)
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

func (r *experiencesRepo) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
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

func (r *experiencesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (domain.Experience, error) {
	var (
		e        domain.Experience
		endDate  sql.NullString
		rawSkill string
	)

	if err := row.Scan(
		&e.ID, &e.Position, &e.Company, &e.StartDate, &endDate, &e.IsPresent,
		&e.Description, &rawSkill, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return domain.Experience{}, err
	}

	e.EndDate = mapNullString(endDate)
	skills, err := decodeSkills(rawSkill)
	if err != nil {
		return domain.Experience{}, err
	}
	e.Skills = skills

	return e, nil
}
