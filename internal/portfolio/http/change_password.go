package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ServeHTTP replaces the authenticated identity's password. Existing
// sessions stay valid; only future logins need the new password.
//
//	@Summary		Change password
//	@Description	Replaces the password after verifying the current one. The new password must match its confirmation and be at least 6 characters.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		changePasswordRequest	true	"Password change"
//	@Success		200		{object}	SuccessResponse			"Password updated"
//	@Failure		400		{object}	APIError				"Validation failure"
//	@Failure		401		{object}	APIError				"Wrong current password or no session"
//	@Failure		500		{object}	APIError				"Store failure"
//	@Router			/api/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := httpx.IdentityFromContext(ctx)
	if email == "" {
		ErrUnauthenticated.WriteError(w)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ValidationError("request body must be valid JSON").WriteError(w)
		return
	}

	err := h.AuthService.ChangePassword(ctx, email, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	switch {
	case err == nil:
		log.Info("password changed", "email", email)
		httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, service.ErrValidation):
		ValidationError(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		ErrInvalidCredentials.WriteError(w)
	default:
		log.Error("password change failed", "email", email, "err", err)
		ErrServerError.WriteError(w)
	}
}
