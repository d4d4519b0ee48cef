package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stefanramac/portfolio/internal/portfolio/service"
	"github.com/stefanramac/portfolio/internal/portfolio/store"
	"github.com/stefanramac/portfolio/pkg/httpx"
	"github.com/stefanramac/portfolio/pkg/slogx"
)

// ExperiencesHandler serves CRUD over experience records. Listing is public;
// every mutation and the single-record read sit behind the session gate.
type ExperiencesHandler struct {
	ExperienceService *service.ExperienceService
}

// HandleList returns all records, newest first.
//
//	@Summary		List experiences
//	@Description	Returns every experience record sorted by start date descending. Public.
//	@Tags			Experiences
//	@Produce		json
//	@Success		200	{array}		ExperienceResponse	"All records"
//	@Failure		500	{object}	APIError			"Store failure"
//	@Router			/api/experiences [get].
func (h *ExperiencesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.ExperienceService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list experiences failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, experienceViews(records))
}

// HandleGet returns a single record by id.
//
//	@Summary		Get experience
//	@Tags			Experiences
//	@Produce		json
//	@Param			id	path		string	true	"Record id"
//	@Success		200	{object}	ExperienceResponse	"The record"
//	@Failure		401	{object}	APIError			"No valid session"
//	@Failure		404	{object}	APIError			"Unknown id"
//	@Router			/api/experiences/{id} [get].
func (h *ExperiencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	record, err := h.ExperienceService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("get experience failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, experienceView(record))
}

// HandleCreate validates and stores a new record.
//
//	@Summary		Create experience
//	@Tags			Experiences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.ExperienceInput	true	"Record fields"
//	@Success		201		{object}	CreateExperienceResponse	"Created"
//	@Failure		400		{object}	APIError					"Missing or malformed fields"
//	@Failure		401		{object}	APIError					"No valid session"
//	@Failure		500		{object}	APIError					"Store failure"
//	@Router			/api/experiences [post].
func (h *ExperiencesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		ValidationError("request body must be valid JSON").WriteError(w)
		return
	}

	id, err := h.ExperienceService.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			ValidationError(err.Error()).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("create experience failed", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CreateExperienceResponse{Success: true, ID: id})
}

// HandleUpdate overwrites an existing record.
//
//	@Summary		Update experience
//	@Tags			Experiences
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Record id"
//	@Param			request	body		service.ExperienceInput	true	"Record fields"
//	@Success		200		{object}	SuccessResponse	"Updated"
//	@Failure		400		{object}	APIError		"Missing or malformed fields"
//	@Failure		401		{object}	APIError		"No valid session"
//	@Failure		404		{object}	APIError		"Unknown id"
//	@Router			/api/experiences/{id} [put].
func (h *ExperiencesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		ValidationError("request body must be valid JSON").WriteError(w)
		return
	}

	err := h.ExperienceService.Update(ctx, r.PathValue("id"), in)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, service.ErrValidation):
		ValidationError(err.Error()).WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(ctx).Error("update experience failed", "err", err)
		ErrServerError.WriteError(w)
	}
}

// HandleDelete removes a record. Deleting the same id twice returns success
// then 404.
//
//	@Summary		Delete experience
//	@Tags			Experiences
//	@Produce		json
//	@Param			id	path		string	true	"Record id"
//	@Success		200	{object}	SuccessResponse	"Deleted"
//	@Failure		401	{object}	APIError		"No valid session"
//	@Failure		404	{object}	APIError		"Unknown id"
//	@Router			/api/experiences/{id} [delete].
func (h *ExperiencesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.ExperienceService.Delete(ctx, r.PathValue("id"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, store.ErrNotFound):
		ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(ctx).Error("delete experience failed", "err", err)
		ErrServerError.WriteError(w)
	}
}
