package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	SessionTTL  time.Duration
	Secure      bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles dashboard login.
//
//	@Summary		Log in
//	@Description	Verifies the email/password credential and issues a session cookie valid for 24 hours.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse	"Session issued"
//	@Failure		400		{object}	APIError		"Missing email or password"
//	@Failure		401		{object}	APIError		"Invalid credentials"
//	@Failure		500		{object}	APIError		"Store failure"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ValidationError("request body must be valid JSON").WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		ValidationError("email and password are required").WriteError(w)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	ttl := h.SessionTTL
	if ttl <= 0 {
		ttl = service.DefaultSessionTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("login succeeded", "email", req.Email)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, User: req.Email})
}
