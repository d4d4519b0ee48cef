package http

import (
	"errors"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

type AuthCheckHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP reports session state without ever failing the request: an
// absent, invalid, or expired session yields authenticated=false rather
// than 401, so the frontend can probe freely.
//
//	@Summary		Check session
//	@Description	Reports whether the request carries a valid session and for which identity.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	AuthCheckResponse	"Session state"
//	@Router			/api/auth/check [get].
func (h *AuthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, err := h.AuthService.Validate(ctx, sessionToken(r))
	if err != nil {
		if !errors.Is(err, service.ErrUnauthenticated) {
			slogx.FromContext(ctx).Error("session check failed", "err", err)
		}
		httpx.WriteJSON(w, http.StatusOK, AuthCheckResponse{Authenticated: false})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthCheckResponse{Authenticated: true, Email: email})
}
