package http

import (
	"errors"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

// sessionToken extracts the opaque token from the request cookie, empty when
// the cookie is absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionMiddleware resolves the session cookie to an identity and stores it
// in the request context. Requests without a valid, unexpired session are
// rejected with 401 before reaching the handler.
func SessionMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email, err := auth.Validate(ctx, sessionToken(r))
			if err != nil {
				if !errors.Is(err, service.ErrUnauthenticated) {
					slogx.FromContext(ctx).Error("session validation failed", "err", err)
					ErrServerError.WriteError(w)
					return
				}
				ErrUnauthenticated.WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.ContextWithIdentity(ctx, email)))
		})
	}
}
