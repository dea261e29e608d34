package v1alpha1

import (
	"net/http"

	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/handlers/v1alpha1/mappers"
)

// (GET /api/v1/dashboard/stats)
func (h *ServiceHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	stats, err := h.dashboardSrv.Statistics(ctx, user)
	if err != nil {
		respondServiceError(ctx, w, err, "failed to compute statistics")
		return
	}
	respondJSON(w, http.StatusOK, mappers.StatsToAPI(stats))
}
