package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/stefanramac/portfolio/pkg/cryptox"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "portfolio-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	return newTestRouterSecure(t, false)
}

func newTestRouterSecure(t *testing.T, secure bool) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hash, err := cryptox.HashPassword("admin123")
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, st.Credentials().CreateCredential(context.Background(), domain.Credential{
		Email:        "admin@example.com",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter("test", st, logger)
	r.AuthService = &service.AuthService{Store: st}
	r.ExperienceService = &service.ExperienceService{Store: st}
	r.SecureCookies = secure
	r.ApplyRoutes()
	return r
}

func doJSON(r *Router, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r *Router, email, password string) *http.Cookie {
	t.Helper()

	rec := doJSON(r, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestLoginCreateThenPublicList(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/experiences", service.ExperienceInput{
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		Description: "Did things",
		Skills:      []string{"X"},
	}, session)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[CreateExperienceResponse](t, rec)
	require.True(t, created.Success)
	require.NotEmpty(t, created.ID)

	// The list is public: no cookie needed.
	rec = doJSON(r, http.MethodGet, "/api/experiences", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	records := decodeBody[[]ExperienceResponse](t, rec)
	require.Len(t, records, 1)
	require.Equal(t, created.ID, records[0].ID)
	require.Equal(t, "2020-01", records[0].StartDate)
	require.Equal(t, []string{"X"}, records[0].Skills)
}

func TestLoginWrongPasswordAndUnauthenticatedCreate(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/experiences", service.ExperienceInput{
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		Description: "Did things",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	apiErr := decodeBody[APIError](t, rec)
	require.Equal(t, ErrorCodeUnauthenticated, apiErr.Code)
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/login", map[string]string{"email": "admin@example.com"}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthCheckReflectsSessionState(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodGet, "/api/auth/check", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeBody[AuthCheckResponse](t, rec)
	require.False(t, state.Authenticated)
	require.Empty(t, state.Email)

	session := login(t, r, "admin@example.com", "admin123")
	rec = doJSON(r, http.MethodGet, "/api/auth/check", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeBody[AuthCheckResponse](t, rec)
	require.True(t, state.Authenticated)
	require.Equal(t, "admin@example.com", state.Email)
}

func TestLogoutRevokesSession(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/logout", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	// The response clears the cookie.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared)

	// The revoked session no longer opens the gate.
	rec = doJSON(r, http.MethodPost, "/api/experiences", service.ExperienceInput{
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		Description: "Did things",
	}, session)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecureCookieAttributesMatchOnLogout(t *testing.T) {
	r := newTestRouterSecure(t, true)

	session := login(t, r, "admin@example.com", "admin123")
	require.True(t, session.Secure)
	require.True(t, session.HttpOnly)

	rec := doJSON(r, http.MethodPost, "/api/logout", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	// The deletion cookie carries the same attributes as the login cookie.
	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	require.True(t, cleared.Secure)
	require.True(t, cleared.HttpOnly)
	require.Less(t, cleared.MaxAge, 0)
}

func TestChangePasswordMismatchKeepsOldCredential(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/change-password", map[string]string{
		"currentPassword": "admin123",
		"newPassword":     "newpass123",
		"confirmPassword": "different",
	}, session)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The old password still works.
	login(t, r, "admin@example.com", "admin123")
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/change-password", map[string]string{
		"currentPassword": "not-it",
		"newPassword":     "newpass123",
		"confirmPassword": "newpass123",
	}, session)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExperienceCRUDRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/experiences", service.ExperienceInput{
		Position:    "Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		EndDate:     "2022-06",
		Description: "Did things",
		Skills:      []string{"X"},
	}, session)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody[CreateExperienceResponse](t, rec).ID

	rec = doJSON(r, http.MethodGet, "/api/experiences/"+id, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	record := decodeBody[ExperienceResponse](t, rec)
	require.Equal(t, "Engineer", record.Position)
	require.NotNil(t, record.EndDate)
	require.Equal(t, "2022-06", *record.EndDate)

	// Marking the role current forces endDate to null.
	rec = doJSON(r, http.MethodPut, "/api/experiences/"+id, service.ExperienceInput{
		Position:    "Senior Engineer",
		Company:     "Acme",
		StartDate:   "2020-01",
		EndDate:     "2022-06",
		IsPresent:   true,
		Description: "Did more things",
		Skills:      []string{"X", "Y"},
	}, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/experiences/"+id, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	record = decodeBody[ExperienceResponse](t, rec)
	require.Equal(t, "Senior Engineer", record.Position)
	require.True(t, record.IsPresent)
	require.Nil(t, record.EndDate)

	rec = doJSON(r, http.MethodDelete, "/api/experiences/"+id, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)

	// The second delete finds nothing.
	rec = doJSON(r, http.MethodDelete, "/api/experiences/"+id, nil, session)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/experiences/"+id, nil, session)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateExperienceValidation(t *testing.T) {
	r := newTestRouter(t)
	session := login(t, r, "admin@example.com", "admin123")

	rec := doJSON(r, http.MethodPost, "/api/experiences", service.ExperienceInput{
		Position: "Engineer",
	}, session)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeBody[APIError](t, rec)
	require.Equal(t, ErrorCodeValidation, apiErr.Code)
}

func TestResumeDownload(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodGet, "/api/resume", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestRootServesLandingPage(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "Stefan Ramac")
}

func TestUnmatchedPathServesNotFoundPage(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodGet, "/no/such/page", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "404")
}

func TestHealthProbes(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(r, http.MethodGet, "/livez", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)

	rec = doJSON(r, http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRateLimited(t *testing.T) {
	r := newTestRouter(t)

	// Exhaust the strict per-IP budget with failed attempts; one request past
	// the burst gets throttled.
	var last int
	for i := 0; i <= httpx.StrictLimit.Burst; i++ {
		rec := doJSON(r, http.MethodPost, "/api/login", map[string]string{
			"email":    "admin@example.com",
			"password": "wrong",
		}, nil)
		last = rec.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}
