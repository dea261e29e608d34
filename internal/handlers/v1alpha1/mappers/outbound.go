// Package mappers converts between the store models and the API types.
package mappers

import (
	"sort"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

func EstimateToAPI(e model.Estimate) api.Estimate {
	out := api.Estimate{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Name:      e.Name,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
	}
	if e.Result != nil {
		out.Results = e.Result.Data
	}
	return out
}

func EstimateListToAPI(estimates model.EstimateList) api.EstimateList {
	out := make(api.EstimateList, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, EstimateToAPI(e))
	}
	return out
}

func ProjectToAPI(p model.Project, estimateCount int64) api.Project {
	return api.Project{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		EstimateCount: estimateCount,
	}
}

func StatsToAPI(stats model.EstimateStats) api.DashboardStats {
	usage := make([]api.ClassUsage, 0, len(stats.UsageByClass))
	for _, u := range stats.UsageByClass {
		usage = append(usage, api.ClassUsage{MixClass: u.MixClass, Estimates: u.Estimates})
	}
	return api.DashboardStats{
		Projects:           stats.Projects,
		Estimates:          stats.Estimates,
		TotalVolumeM3:      stats.TotalVolumeM3,
		TotalEstimatedCost: stats.TotalEstimatedCost,
		UsageByClass:       usage,
	}
}

// PresetsToAPI flattens the preset registry into a list sorted by class so
// the endpoint output is stable.
func PresetsToAPI(presets map[string]estimation.MixRatio) []api.PresetMixRatio {
	out := make([]api.PresetMixRatio, 0, len(presets))
	for class, ratio := range presets {
		out = append(out, api.PresetMixRatio{Class: class, Ratio: ratio})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}
