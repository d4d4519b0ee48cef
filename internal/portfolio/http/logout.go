package http

import (
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
	Secure      bool
}

// ServeHTTP revokes the presented session and clears the cookie. Revoking a
// session that is already gone still succeeds.
//
//	@Summary		Log out
//	@Description	Revokes the current session and clears the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	SuccessResponse	"Session revoked"
//	@Failure		401	{object}	APIError		"No valid session"
//	@Failure		500	{object}	APIError		"Store failure"
//	@Router			/api/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AuthService.Logout(ctx, sessionToken(r)); err != nil {
		slogx.FromContext(ctx).Error("logout failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	// Deletion must carry the same attributes as the login cookie or some
	// user agents treat it as a different cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
