package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/pkg/httpx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "portfolio_session"

// Error codes used in API error responses.
const (
	ErrorCodeValidation         = "validation_error"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire shape of every error response. It implements the
// error interface so handlers can both return and write it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// ErrUnauthenticated is returned when no valid session accompanies a
	// request that requires one.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "authentication required",
	}

	// ErrInvalidCredentials is returned when a login or password change
	// presents a credential that does not verify.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid email or password",
	}

	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrServerError is returned on store failures. Internal detail stays in
	// the logs, never in the response body.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "an internal error occurred",
	}
)

// ValidationError builds a 400 response describing the rejected input.
func ValidationError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    message,
	}
}

// SuccessResponse acknowledges a mutation with no further payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LoginResponse is returned on successful login alongside the session cookie.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    string `json:"user"`
}

// AuthCheckResponse reports whether the presented session is valid.
type AuthCheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// CreateExperienceResponse carries the generated id of a new record.
type CreateExperienceResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ExperienceResponse is the JSON view of one experience record. EndDate is
// null while the position is current.
type ExperienceResponse struct {
	ID          string   `json:"id"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	IsPresent   bool     `json:"isPresent"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

func experienceView(e domain.Experience) ExperienceResponse {
	var endDate *string
	if e.EndDate != "" {
		endDate = &e.EndDate
	}
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return ExperienceResponse{
		ID:          e.ID,
		Position:    e.Position,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     endDate,
		IsPresent:   e.IsPresent,
		Description: e.Description,
		Skills:      skills,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func experienceViews(records []domain.Experience) []ExperienceResponse {
	views := make([]ExperienceResponse, 0, len(records))
	for _, e := range records {
		views = append(views, experienceView(e))
	}
	return views
}
