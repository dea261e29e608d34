package v1alpha1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/handlers/v1alpha1/mappers"
	"github.com/slabworks/concrete-planner/internal/service"
)

// (POST /api/v1/estimates/preview)
func (h *ServiceHandler) PreviewEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.estimationSrv.Preview(ctx, req)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to compute estimate")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// (POST /api/v1/estimates)
func (h *ServiceHandler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	var req api.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	estimate, err := h.estimationSrv.CreateEstimate(ctx, user, req)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to create estimate")
		return
	}

	response := api.EstimateCreated{
		ID:    estimate.ID,
		Links: h.exportLinks(estimate.ID),
	}
	if estimate.Result != nil {
		response.Results = estimate.Result.Data
	}
	respondJSON(w, http.StatusCreated, response)
}

// (GET /api/v1/estimates)
func (h *ServiceHandler) ListEstimates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	var projectID *uuid.UUID
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(ctx, w, http.StatusBadRequest, "projectId is not a valid UUID", nil)
			return
		}
		projectID = &id
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "limit must be a non-negative integer", nil)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "offset must be a non-negative integer", nil)
		return
	}

	estimates, err := h.estimationSrv.ListEstimates(ctx, user, projectID, limit, offset)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to list estimates")
		return
	}
	respondJSON(w, http.StatusOK, mappers.EstimateListToAPI(estimates))
}

// (GET /api/v1/estimates/{id})
func (h *ServiceHandler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "estimate id is not a valid UUID", nil)
		return
	}

	estimate, err := h.estimationSrv.GetEstimate(ctx, user, id)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to get estimate")
		return
	}
	respondJSON(w, http.StatusOK, mappers.EstimateToAPI(*estimate))
}

// (DELETE /api/v1/estimates/{id})
func (h *ServiceHandler) DeleteEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "estimate id is not a valid UUID", nil)
		return
	}

	if err := h.estimationSrv.DeleteEstimate(ctx, user, id); err != nil {
		respondServiceError(ctx, w, err, "failed to delete estimate")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// (GET /api/v1/estimates/{id}/export?format=csv|json|xlsx)
func (h *ServiceHandler) ExportEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "estimate id is not a valid UUID", nil)
		return
	}

	format := service.ReportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = service.ReportFormatCSV
	}

	estimate, err := h.estimationSrv.GetEstimate(ctx, user, id)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to get estimate")
		return
	}

	payload, err := h.exportSrv.GenerateBoM(estimate, format)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to render export")
		return
	}

	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload.Content)
}

func (h *ServiceHandler) exportLinks(id uuid.UUID) api.ExportLinks {
	base := fmt.Sprintf("%s/api/v1/estimates/%s/export", h.baseURL, id)
	return api.ExportLinks{
		CSV:  base + "?format=csv",
		JSON: base + "?format=json",
		XLSX: base + "?format=xlsx",
	}
}
