package estimation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every error Estimate returns. It marks a
// contract violation by the caller, not an internal fault: callers mapping
// it to a transport response should treat it as a bad request.
var ErrInvalidInput = errors.New("invalid estimation input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Estimate computes the bill of materials for the given input.
//
// The checks here are deliberately redundant with request-level validation:
// Estimate must be safe to call directly, so it re-rejects non-positive
// volumes, mix-ratio parts and densities on its own.
//
// Internally every step runs at full float precision; rounding is applied
// once, when the Result is assembled.
func Estimate(in Input) (*Result, error) {
	p, err := in.resolve()
	if err != nil {
		return nil, err
	}

	partSum := p.MixRatio.Cement + p.MixRatio.Sand + p.MixRatio.Aggregate

	// Loose dry constituent volume needed to yield the compacted target.
	adjustedVolume := p.VolumeM3 * p.DryFactor

	cementVolume := p.MixRatio.Cement / partSum * adjustedVolume
	sandVolume := p.MixRatio.Sand / partSum * adjustedVolume
	aggregateVolume := p.MixRatio.Aggregate / partSum * adjustedVolume

	// Wastage applies uniformly to mass, never to the reported volumes.
	wastageMultiplier := 1 + p.WastageFactor/100

	cementMass := cementVolume * p.Densities.Cement * wastageMultiplier
	sandMass := sandVolume * p.Densities.Sand * wastageMultiplier
	aggregateMass := aggregateVolume * p.Densities.Aggregate * wastageMultiplier

	// A partial bag still consumes a whole bag.
	bags := int(math.Ceil(cementMass / CementBagKg))

	cementTonnes := cementMass / 1000
	sandTonnes := sandMass / 1000
	aggregateTonnes := aggregateMass / 1000

	cementCost := float64(bags) * p.Costs.CementPerBag
	sandCost := sandTonnes * p.Costs.SandPerTonne
	aggregateCost := aggregateTonnes * p.Costs.AggregatePerTonne

	totalMass := cementMass + sandMass + aggregateMass
	totalCost := cementCost + sandCost + aggregateCost

	return &Result{
		Cement: MaterialResult{
			Volume: round(cementVolume, 6),
			Mass:   round(cementMass, 2),
			Bags:   &bags,
			Tonnes: round(cementTonnes, 3),
			Cost:   round(cementCost, 2),
		},
		Sand: MaterialResult{
			Volume: round(sandVolume, 6),
			Mass:   round(sandMass, 2),
			Tonnes: round(sandTonnes, 3),
			Cost:   round(sandCost, 2),
		},
		Aggregate: MaterialResult{
			Volume: round(aggregateVolume, 6),
			Mass:   round(aggregateMass, 2),
			Tonnes: round(aggregateTonnes, 3),
			Cost:   round(aggregateCost, 2),
		},
		Totals: Totals{
			Volume:        round(adjustedVolume, 6),
			Mass:          round(totalMass, 2),
			EstimatedCost: round(totalCost, 2),
		},
		Parameters: p,
	}, nil
}

// resolve applies defaults to optional fields and enforces the input contract.
func (in Input) resolve() (Parameters, error) {
	p := Parameters{
		VolumeM3:      in.VolumeM3,
		MixRatio:      in.MixRatio,
		Densities:     DefaultDensities(),
		DryFactor:     DefaultDryFactor,
		WastageFactor: DefaultWastageFactor,
		Costs:         DefaultCosts(),
	}
	if in.Densities != nil {
		p.Densities = *in.Densities
	}
	if in.DryFactor != nil {
		p.DryFactor = *in.DryFactor
	}
	if in.WastageFactor != nil {
		p.WastageFactor = *in.WastageFactor
	}
	if in.Costs != nil {
		p.Costs = *in.Costs
	}

	if !(p.VolumeM3 > 0) {
		return Parameters{}, invalidInputf("volume must be greater than zero, got %v", p.VolumeM3)
	}
	for _, part := range []struct {
		name  string
		value float64
	}{
		{"cement", p.MixRatio.Cement},
		{"sand", p.MixRatio.Sand},
		{"aggregate", p.MixRatio.Aggregate},
	} {
		if !(part.value > 0) {
			return Parameters{}, invalidInputf("mix ratio part %q must be greater than zero, got %v", part.name, part.value)
		}
	}
	for _, density := range []struct {
		name  string
		value float64
	}{
		{"cement", p.Densities.Cement},
		{"sand", p.Densities.Sand},
		{"aggregate", p.Densities.Aggregate},
	} {
		if !(density.value > 0) {
			return Parameters{}, invalidInputf("density of %q must be greater than zero, got %v", density.name, density.value)
		}
	}
	if !(p.DryFactor > 0) || p.DryFactor > MaxDryFactor {
		return Parameters{}, invalidInputf("dry factor must be in (0, %v], got %v", MaxDryFactor, p.DryFactor)
	}
	if !(p.WastageFactor >= 0) || p.WastageFactor > MaxWastageFactor {
		return Parameters{}, invalidInputf("wastage factor must be in [0, %v], got %v", MaxWastageFactor, p.WastageFactor)
	}

	return p, nil
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
