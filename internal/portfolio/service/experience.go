package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/idx"
)

// ExperienceInput carries the mutable fields of an experience record as
// submitted by the dashboard. Validation and normalization happen here, in
// one place, before anything reaches the store.
type ExperienceInput struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	IsPresent   bool     `json:"isPresent"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// validate checks required fields and date shapes, returning a wrapped
// ErrValidation describing the first problem found.
func (in ExperienceInput) validate() error {
	switch {
	case strings.TrimSpace(in.Position) == "":
		return fmt.Errorf("%w: position is required", ErrValidation)
	case strings.TrimSpace(in.Company) == "":
		return fmt.Errorf("%w: company is required", ErrValidation)
	case strings.TrimSpace(in.StartDate) == "":
		return fmt.Errorf("%w: startDate is required", ErrValidation)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	if !validYearMonth(in.StartDate) {
		return fmt.Errorf("%w: startDate must be formatted YYYY-MM", ErrValidation)
	}
	if !in.IsPresent && in.EndDate != "" && !validYearMonth(in.EndDate) {
		return fmt.Errorf("%w: endDate must be formatted YYYY-MM", ErrValidation)
	}

	return nil
}

// validYearMonth enforces the "YYYY-MM" shape. Validated dates make the
// store's lexical sort equal to chronological sort.
func validYearMonth(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// normalized applies the record invariants: a present position has no end
// date regardless of what was supplied, and skills is never nil.
func (in ExperienceInput) normalized() ExperienceInput {
	if in.IsPresent {
		in.EndDate = ""
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	return in
}

// ExperienceService owns CRUD over experience records. The authorization
// gate lives in the HTTP layer; everything here assumes the caller is
// allowed to mutate.
type ExperienceService struct {
	Store store.Store
}

func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.Store.Experiences().ListExperiences(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (domain.Experience, error) {
	return s.Store.Experiences().GetExperienceByID(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, in ExperienceInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	in = in.normalized()

	now := time.Now().UTC()
	e := domain.Experience{
		ID:          idx.New().String(),
		Position:    in.Position,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsPresent:   in.IsPresent,
		Description: in.Description,
		Skills:      in.Skills,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Experiences().CreateExperience(ctx, e); err != nil {
		return "", fmt.Errorf("create experience: %w", err)
	}
	return e.ID, nil
}

// Update overwrites an existing record with the validated input. CreatedAt is
// preserved by the store; concurrent updates resolve last-writer-wins.
func (s *ExperienceService) Update(ctx context.Context, id string, in ExperienceInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	in = in.normalized()

	e := domain.Experience{
		ID:          id,
		Position:    in.Position,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsPresent:   in.IsPresent,
		Description: in.Description,
		Skills:      in.Skills,
		UpdatedAt:   time.Now().UTC(),
	}

	return s.Store.Experiences().UpdateExperience(ctx, e)
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.Store.Experiences().DeleteExperience(ctx, id)
}
