package service

import (
	"context"
	"fmt"

	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/store"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

type DashboardService struct {
	store store.Store
}

func NewDashboardService(store store.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Statistics aggregates the caller organization's stored estimates.
func (s *DashboardService) Statistics(ctx context.Context, user auth.User) (model.EstimateStats, error) {
	stats, err := s.store.Statistics(ctx, user.Organization)
	if err != nil {
		return model.EstimateStats{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return stats, nil
}
