package v1alpha1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/handlers/v1alpha1/mappers"
)

// (GET /api/v1/projects)
func (h *ServiceHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	projects, err := h.projectSrv.ListProjects(ctx, user, r.URL.Query().Get("name"))
	if err != nil {
		respondServiceError(ctx, w, err, "failed to list projects")
		return
	}

	out := make(api.ProjectList, 0, len(projects))
	for _, p := range projects {
		count, err := h.projectSrv.CountEstimates(ctx, p.ID)
		if err != nil {
			respondServiceError(ctx, w, err, "failed to count estimates")
			return
		}
		out = append(out, mappers.ProjectToAPI(p, count))
	}
	respondJSON(w, http.StatusOK, out)
}

// (POST /api/v1/projects)
func (h *ServiceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	var form api.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	project, err := h.projectSrv.CreateProject(ctx, user, form)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to create project")
		return
	}
	respondJSON(w, http.StatusCreated, mappers.ProjectToAPI(*project, 0))
}

// (GET /api/v1/projects/{id})
func (h *ServiceHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "project id is not a valid UUID", nil)
		return
	}

	project, err := h.projectSrv.GetProject(ctx, user, id)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to get project")
		return
	}
	count, err := h.projectSrv.CountEstimates(ctx, id)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to count estimates")
		return
	}
	respondJSON(w, http.StatusOK, mappers.ProjectToAPI(*project, count))
}

// (PUT /api/v1/projects/{id})
func (h *ServiceHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "project id is not a valid UUID", nil)
		return
	}

	var form api.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	project, err := h.projectSrv.UpdateProject(ctx, user, id, form)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to update project")
		return
	}
	count, err := h.projectSrv.CountEstimates(ctx, id)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to count estimates")
		return
	}
	respondJSON(w, http.StatusOK, mappers.ProjectToAPI(*project, count))
}

// (DELETE /api/v1/projects/{id})
func (h *ServiceHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "project id is not a valid UUID", nil)
		return
	}

	if err := h.projectSrv.DeleteProject(ctx, user, id); err != nil {
		respondServiceError(ctx, w, err, "failed to delete project")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
