package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/cv"
	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"

	_ "github.com/stefanramac/portfolio/api/portfolio" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	ExperienceService *service.ExperienceService

	// ResumeContent is the static resume content rendered around the stored
	// experience records.
	ResumeContent cv.Content

	// SecureCookies marks session cookies Secure; enabled outside dev.
	SecureCookies bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,

		ResumeContent: cv.DefaultContent(),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerExperiences()
	r.registerResume()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Everything unmatched lands on the static handler: the landing page at
	// the root, the 404 page elsewhere.
	r.Mux.Handle("/", StaticHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portfolio API
//	@version		0.1.0
//	@description	Backend for a personal portfolio site: session-based dashboard authentication,
//	@description	experience record management, and on-demand resume rendering.
//
//	@contact.name	Stefan Ramac
//	@contact.url	https://www.stefanramac.com
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		AuthService: r.AuthService,
		SessionTTL:  r.AuthService.SessionTTL,
		Secure:      r.SecureCookies,
	}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/logout - requires a session, moderate limit by identity
	logoutHandler := &LogoutHandler{
		AuthService: r.AuthService,
		Secure:      r.SecureCookies,
	}
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(logoutHandler,
			SessionMiddleware(r.AuthService),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)

	// GET /api/auth/check - public probe, high limit
	checkHandler := &AuthCheckHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /api/auth/check",
		httpx.Chain(checkHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /api/change-password - strict limit (credential guessing surface)
	changeHandler := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/change-password",
		httpx.Chain(changeHandler,
			SessionMiddleware(r.AuthService),
			httpx.RateLimitByIdentity(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerExperiences() {
	h := &ExperiencesHandler{ExperienceService: r.ExperienceService}

	// GET /api/experiences - public read, high limit
	r.Mux.Handle("GET /api/experiences",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Everything else requires a session - moderate limit by identity
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		SessionMiddleware(r.AuthService),
		httpx.RateLimitByIdentity(httpx.ModerateLimit),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		SessionMiddleware(r.AuthService),
		httpx.RateLimitByIdentity(httpx.ModerateLimit),
	)
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		SessionMiddleware(r.AuthService),
		httpx.RateLimitByIdentity(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		SessionMiddleware(r.AuthService),
		httpx.RateLimitByIdentity(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/experiences/{id}", securedGet)
	r.Mux.Handle("POST /api/experiences", securedCreate)
	r.Mux.Handle("PUT /api/experiences/{id}", securedUpdate)
	r.Mux.Handle("DELETE /api/experiences/{id}", securedDelete)
}

func (r *Router) registerResume() {
	// GET /api/resume - public download, moderate limit (rendering costs CPU)
	h := &ResumeHandler{
		ExperienceService: r.ExperienceService,
		Content:           r.ResumeContent,
	}
	r.Mux.Handle("GET /api/resume",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - high limits (monitoring systems poll often)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
