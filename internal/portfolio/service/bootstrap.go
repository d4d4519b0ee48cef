package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/cryptox"
	"github.com/stefanramac/portfolio/pkg/idx"
)

// BootstrapService provisions a fresh deployment: the admin credential from
// configuration and the initial experience records. Both steps are gated on
// the respective table being empty, so reruns are no-ops.
type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger

	AdminEmail    string
	AdminPassword string
}

func (s *BootstrapService) Run(ctx context.Context) error {
	if err := s.provisionAdmin(ctx); err != nil {
		return err
	}
	return s.seedExperiences(ctx)
}

func (s *BootstrapService) provisionAdmin(ctx context.Context) error {
	empty, err := s.Store.Credentials().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check credentials: %w", err)
	}
	if !empty {
		return nil
	}

	if s.AdminEmail == "" || s.AdminPassword == "" {
		s.Logger.Warn("no admin credential provisioned; set ADMIN_EMAIL and ADMIN_PASSWORD")
		return nil
	}

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	if err := s.Store.Credentials().CreateCredential(ctx, domain.Credential{
		Email:        s.AdminEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("create admin credential: %w", err)
	}

	s.Logger.Info("admin credential provisioned", "email", s.AdminEmail)
	return nil
}

func (s *BootstrapService) seedExperiences(ctx context.Context) error {
	empty, err := s.Store.Experiences().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check experiences: %w", err)
	}
	if !empty {
		return nil
	}

	now := time.Now().UTC()
	for _, seed := range seedExperiences {
		seed.ID = idx.New().String()
		seed.CreatedAt = now
		seed.UpdatedAt = now
		if err := s.Store.Experiences().CreateExperience(ctx, seed); err != nil {
			return fmt.Errorf("seed experience %q: %w", seed.Company, err)
		}
	}

	s.Logger.Info("seeded initial experiences", "count", len(seedExperiences))
	return nil
}

// seedExperiences is the initial work history shown before any dashboard
// edits have happened.
var seedExperiences = []domain.Experience{
	{
		Position:    "System Integration Analyst",
		Company:     "Erste Banka Srbija",
		StartDate:   "2025-07",
		EndDate:     "2025-11",
		Description: "Responsible for functional analysis, design, and implementation oversight of banking solutions with focus on system integration. Leading end-to-end integration projects including REST APIs, event streaming, and file transfers. Preparing Integration Design Documents, supporting testing execution, and maintaining integration architecture repositories.",
		Skills:      []string{"RESTful APIs", "Kafka", "Event Streaming", "SDLC", "Integration Design", "Banking Sector"},
	},
	{
		Position:    "Integration Specialist",
		Company:     "TNation",
		StartDate:   "2024-08",
		EndDate:     "2025-05",
		Description: "Designed, developed, and implemented integration solutions using Software AG WebMethods for international clients. Created robust integration architectures connecting enterprise systems with REST and SOAP web services. Leveraged AWS cloud services for hosting and managing integration solutions. Worked extensively with MongoDB and created standardized APIs using Swagger and OpenAPI specifications.",
		Skills:      []string{"Software AG WebMethods", "Java", "AWS Cloud", "MongoDB", "REST/SOAP", "OpenAPI", "Jenkins"},
	},
	{
		Position:    "Integration Platform Developer",
		Company:     "NLB DigIT",
		StartDate:   "2023-12",
		EndDate:     "2024-08",
		Description: "Integration development on enterprise ESB platform building stable integrations between various enterprise solutions for NLB Banks across Slovenia, Serbia, Macedonia, Montenegro, and Croatia. Utilized Microsoft Azure for API Management and Logic Apps. Developed API proxies and flows in Google Apigee applying security standards including OAuth 2.0, JWT, and mTLS with caching and performance optimization.",
		Skills:      []string{"Azure API Management", "Azure Functions", "Google Apigee", "SOAP Web Services", "SQL/PL-SQL", "mTLS", "OAuth 2.0"},
	},
	{
		Position:    "Enterprise Integration Architect",
		Company:     "Schneider Electric",
		StartDate:   "2022-12",
		EndDate:     "2023-12",
		Description: "Provided technical leadership for multiple concurrent projects requiring custom software design and deployment. Defined technical strategy, gathered requirements, and led solution design workshops for utility sector clients. Documented data models, functional specs, and integrations. Performed system, database, application, and network capacity planning while mentoring team members and supporting data migration design.",
		Skills:      []string{"Solution Architecture", "Technical Leadership", "Consulting", "Project Management", "Mentoring", "Utility Sector"},
	},
	{
		Position:    "Integration Developer",
		Company:     "Devoteam Serbia",
		StartDate:   "2021-08",
		EndDate:     "2022-12",
		Description: "Developed TIBCO BW5 Fulfillment Orchestration Suite applications for telecommunications clients including A1 Serbia and A1 Macedonia. Built SOAP services with backend system integrations through SOAP/HTTP and SOAP/JMS. Designed Technical Products and prepared Bamboo pipelines for deployment. Developed and refactored BW5 applications and SMPP adapter for VAS (value-added) Services. Provided production support as EAI Team member.",
		Skills:      []string{"TIBCO BW5", "SOAP", "JMS", "SMPP", "Bamboo CI/CD", "Telecommunications"},
	},
}
