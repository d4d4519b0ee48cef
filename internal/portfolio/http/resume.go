package http

import (
	"fmt"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/cv"
	"github.com/stefanramac/portfolio/internal/portfolio/domain"
	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

type ResumeHandler struct {
	ExperienceService *service.ExperienceService
	Content           cv.Content
}

// ServeHTTP renders the résumé document from the current experience list. A
// failed fetch degrades to the static sections instead of aborting; only a
// render failure returns an error, never a partial document.
//
//	@Summary		Download resume
//	@Description	Renders the resume as a PDF from the stored experience records plus static content.
//	@Tags			Resume
//	@Produce		application/pdf
//	@Success		200	{file}		file		"The rendered document"
//	@Failure		500	{object}	APIError	"Render failure"
//	@Router			/api/resume [get].
func (h *ResumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	experiences, err := h.ExperienceService.List(ctx)
	if err != nil {
		log.Warn("experience fetch failed, rendering static resume", "err", err)
		experiences = []domain.Experience{}
	}

	out, err := cv.Render(experiences, h.Content)
	if err != nil {
		log.Error("resume render failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.Content.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(out)))
	_, _ = w.Write(out)
}
