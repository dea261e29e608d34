package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/handlers/validator"
	"github.com/slabworks/concrete-planner/internal/store"
	"github.com/slabworks/concrete-planner/internal/store/model"
	"github.com/slabworks/concrete-planner/pkg/metrics"
)

// EstimationService orchestrates the estimation workflow: request validation,
// the pure engine run, and, for the authoritative path, persistence of the
// produced bill of materials.
type EstimationService struct {
	store store.Store
}

func NewEstimationService(store store.Store) *EstimationService {
	return &EstimationService{store: store}
}

// Preview validates the request and runs the engine without persisting
// anything. It is the backing of the interactive preview endpoint and shares
// the exact calculation path with CreateEstimate.
func (s *EstimationService) Preview(ctx context.Context, req api.EstimateRequest) (*estimation.Result, error) {
	if messages := validator.ValidateEstimateRequest(req); len(messages) > 0 {
		return nil, NewErrValidation(messages)
	}
	result, err := estimation.Estimate(toEngineInput(req))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateEstimate validates, runs the engine and stores the result under the
// caller's organization. When the request names a project, the project must
// exist and belong to the same organization.
func (s *EstimationService) CreateEstimate(ctx context.Context, user auth.User, req api.EstimateRequest) (*model.Estimate, error) {
	logger := zap.S().Named("estimation_service")

	if messages := validator.ValidateEstimateRequest(req); len(messages) > 0 {
		return nil, NewErrValidation(messages)
	}

	result, err := estimation.Estimate(toEngineInput(req))
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		project, err := s.store.Project().Get(ctx, *req.ProjectID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, NewErrProjectNotFound(*req.ProjectID)
			}
			return nil, fmt.Errorf("failed to get project: %w", err)
		}
		if project.OrgID != user.Organization {
			return nil, NewErrResourceAccessForbidden(*req.ProjectID, "project")
		}
	}

	estimate := model.Estimate{
		ID:            uuid.New(),
		Name:          req.Name,
		Location:      req.Location,
		OrgID:         user.Organization,
		Username:      user.Username,
		ProjectID:     req.ProjectID,
		MixClass:      estimation.ClassifyMixRatio(result.Parameters.MixRatio),
		VolumeM3:      result.Parameters.VolumeM3,
		TotalVolumeM3: result.Totals.Volume,
		TotalMassKg:   result.Totals.Mass,
		TotalCost:     result.Totals.EstimatedCost,
		Result:        model.MakeJSONField(*result),
	}

	created, err := s.store.Estimate().Create(ctx, estimate)
	if err != nil {
		return nil, fmt.Errorf("failed to store estimate: %w", err)
	}

	metrics.IncreaseEstimatesCreatedTotal()
	logger.Infow("estimate created",
		"estimate_id", created.ID,
		"org_id", user.Organization,
		"volume_m3", created.VolumeM3,
		"total_cost", created.TotalCost,
	)
	return created, nil
}

func (s *EstimationService) GetEstimate(ctx context.Context, user auth.User, id uuid.UUID) (*model.Estimate, error) {
	estimate, err := s.store.Estimate().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrEstimateNotFound(id)
		}
		return nil, fmt.Errorf("failed to get estimate: %w", err)
	}
	if estimate.OrgID != user.Organization {
		return nil, NewErrResourceAccessForbidden(id, "estimate")
	}
	return estimate, nil
}

// ListEstimates returns the caller organization's estimates, optionally
// scoped to one project and windowed by limit/offset. Zero limit means no
// window.
func (s *EstimationService) ListEstimates(ctx context.Context, user auth.User, projectID *uuid.UUID, limit, offset int) (model.EstimateList, error) {
	filter := store.NewEstimateQueryFilter().ByOrgID(user.Organization)
	if projectID != nil {
		filter = filter.ByProjectID(*projectID)
	}

	var options *store.EstimateQueryOptions
	if limit > 0 || offset > 0 {
		options = store.NewEstimateQueryOptions()
		if limit > 0 {
			options = options.WithLimit(limit)
		}
		if offset > 0 {
			options = options.WithOffset(offset)
		}
	}

	estimates, err := s.store.Estimate().List(ctx, filter, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	return estimates, nil
}

func (s *EstimationService) DeleteEstimate(ctx context.Context, user auth.User, id uuid.UUID) error {
	if _, err := s.GetEstimate(ctx, user, id); err != nil {
		return err
	}
	if err := s.store.Estimate().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete estimate: %w", err)
	}
	return nil
}

// toEngineInput carries the calculation fields over to the engine's input,
// leaving display metadata (name, location, project) behind.
func toEngineInput(req api.EstimateRequest) estimation.Input {
	in := estimation.Input{
		Densities:     req.Densities,
		DryFactor:     req.DryFactor,
		WastageFactor: req.WastageFactor,
		Costs:         req.Costs,
	}
	if req.VolumeM3 != nil {
		in.VolumeM3 = *req.VolumeM3
	}
	if req.MixRatio != nil {
		in.MixRatio = *req.MixRatio
	}
	return in
}
