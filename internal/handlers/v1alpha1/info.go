package v1alpha1

import (
	"net/http"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/handlers/v1alpha1/mappers"
)

// (GET /api/v1/presets/mix-ratios)
func (h *ServiceHandler) ListPresetMixRatios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, mappers.PresetsToAPI(estimation.PresetMixRatios()))
}

// (GET /api/v1/health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.Health{Status: "ok"})
}
