package estimation

import "math"

const (
	// DefaultDryFactor is the standard dry-to-wet bulking ratio for concrete.
	DefaultDryFactor = 1.54
	// DefaultWastageFactor is the default wastage buffer in percent.
	DefaultWastageFactor = 5.0

	// MaxDryFactor bounds the dry-volume factor; values above it are
	// physically implausible and rejected.
	MaxDryFactor = 3.0
	// MaxWastageFactor bounds the wastage percentage.
	MaxWastageFactor = 50.0

	// CementBagKg is the nominal mass of one cement bag.
	CementBagKg = 50.0

	// MinAdvisoryVolumeM3 is the volume below which request validation asks
	// the caller to confirm the input is intentional.
	MinAdvisoryVolumeM3 = 0.01
)

// DefaultDensities returns the standard bulk densities in kg/m³.
func DefaultDensities() Densities {
	return Densities{Cement: 1440, Sand: 1600, Aggregate: 1750}
}

// DefaultCosts returns the default flat unit cost table.
func DefaultCosts() CostTable {
	return CostTable{CementPerBag: 7.5, SandPerTonne: 28, AggregatePerTonne: 32}
}

// PresetMixRatios returns the mix ratios for common concrete classes.
// The map is built fresh on every call so callers can never mutate shared
// state through the returned value.
func PresetMixRatios() map[string]MixRatio {
	return map[string]MixRatio{
		"C20/25": {Cement: 1, Sand: 2, Aggregate: 4},
		"C25/30": {Cement: 1, Sand: 1.5, Aggregate: 3},
		"C30/37": {Cement: 1, Sand: 1.2, Aggregate: 2.4},
		"C35/45": {Cement: 1, Sand: 1, Aggregate: 2},
	}
}

// CustomMixClass labels estimates whose ratio matches no preset.
const CustomMixClass = "custom"

// ClassifyMixRatio maps a mix ratio back to its concrete class, if it is one
// of the presets. Comparison is scale invariant: 2:4:8 classifies as C20/25
// just like 1:2:4 does. Non-preset ratios classify as CustomMixClass.
func ClassifyMixRatio(r MixRatio) string {
	if !(r.Cement > 0) {
		return CustomMixClass
	}
	for class, preset := range PresetMixRatios() {
		scale := r.Cement / preset.Cement
		if ratioEqual(r.Sand, preset.Sand*scale) && ratioEqual(r.Aggregate, preset.Aggregate*scale) {
			return class
		}
	}
	return CustomMixClass
}

func ratioEqual(a, b float64) bool {
	const tolerance = 1e-9
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
