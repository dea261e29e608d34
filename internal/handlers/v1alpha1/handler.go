package v1alpha1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/service"
	"github.com/slabworks/concrete-planner/pkg/requestid"
)

type ServiceHandler struct {
	estimationSrv *service.EstimationService
	projectSrv    *service.ProjectService
	exportSrv     *service.ExportService
	dashboardSrv  *service.DashboardService
	baseURL       string
}

func NewServiceHandler(
	estimationSrv *service.EstimationService,
	projectSrv *service.ProjectService,
	exportSrv *service.ExportService,
	dashboardSrv *service.DashboardService,
	baseURL string,
) *ServiceHandler {
	return &ServiceHandler{
		estimationSrv: estimationSrv,
		projectSrv:    projectSrv,
		exportSrv:     exportSrv,
		dashboardSrv:  dashboardSrv,
		baseURL:       baseURL,
	}
}

// queryInt parses an optional non-negative integer query parameter; absence
// yields zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Named("handler").Errorf("failed to encode response: %v", err)
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, status int, message string, errs []string) {
	respondJSON(w, status, api.Error{
		Message:   message,
		Errors:    errs,
		RequestID: requestid.FromContextPtr(ctx),
	})
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
// Engine contract violations are bad requests, not internal faults.
func respondServiceError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var validationErr *service.ErrValidation
	var notFound *service.ErrResourceNotFound
	var forbidden *service.ErrResourceAccessForbidden
	var unsupported *service.ErrUnsupportedExportFormat

	switch {
	case errors.As(err, &validationErr):
		respondError(ctx, w, http.StatusBadRequest, "validation failed", validationErr.Messages)
	case errors.Is(err, estimation.ErrInvalidInput):
		respondError(ctx, w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &notFound):
		respondError(ctx, w, http.StatusNotFound, err.Error(), nil)
	case errors.As(err, &forbidden):
		respondError(ctx, w, http.StatusForbidden, err.Error(), nil)
	case errors.As(err, &unsupported):
		respondError(ctx, w, http.StatusBadRequest, err.Error(), nil)
	default:
		zap.S().Named("handler").Errorf("%s: %v", fallback, err)
		respondError(ctx, w, http.StatusInternalServerError, fallback, nil)
	}
}
