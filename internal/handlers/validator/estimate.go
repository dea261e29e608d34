package validator

import (
	"fmt"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/estimation"
)

// ValidateEstimateRequest checks an estimate request and returns every
// violation as a human-readable message; an empty slice means the request is
// valid. It never short-circuits: a request with three bad mix-ratio parts
// produces three messages.
//
// The estimation engine re-checks the hard invariants on its own, so this
// function is about reporting quality, not safety.
func ValidateEstimateRequest(req api.EstimateRequest) []string {
	var errs []string

	switch {
	case req.VolumeM3 == nil:
		errs = append(errs, "volumeM3 is required")
	case *req.VolumeM3 <= 0:
		errs = append(errs, "volumeM3 must be greater than zero")
	case *req.VolumeM3 < estimation.MinAdvisoryVolumeM3:
		errs = append(errs, fmt.Sprintf("volumeM3 is below %v m³; verify this is intentional", estimation.MinAdvisoryVolumeM3))
	}

	if req.MixRatio == nil {
		errs = append(errs, "mixRatio is required")
	} else {
		if req.MixRatio.Cement <= 0 {
			errs = append(errs, "mixRatio.cement must be greater than zero")
		}
		if req.MixRatio.Sand <= 0 {
			errs = append(errs, "mixRatio.sand must be greater than zero")
		}
		if req.MixRatio.Aggregate <= 0 {
			errs = append(errs, "mixRatio.aggregate must be greater than zero")
		}
	}

	if req.Densities != nil {
		if req.Densities.Cement <= 0 {
			errs = append(errs, "densities.cement must be greater than zero")
		}
		if req.Densities.Sand <= 0 {
			errs = append(errs, "densities.sand must be greater than zero")
		}
		if req.Densities.Aggregate <= 0 {
			errs = append(errs, "densities.aggregate must be greater than zero")
		}
	}

	if req.DryFactor != nil && (*req.DryFactor <= 0 || *req.DryFactor > estimation.MaxDryFactor) {
		errs = append(errs, fmt.Sprintf("dryFactor must be greater than zero and at most %v", estimation.MaxDryFactor))
	}

	if req.WastageFactor != nil && (*req.WastageFactor < 0 || *req.WastageFactor > estimation.MaxWastageFactor) {
		errs = append(errs, fmt.Sprintf("wastageFactor must be between 0 and %v", estimation.MaxWastageFactor))
	}

	return errs
}
