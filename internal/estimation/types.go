package estimation

// MixRatio expresses the relative parts, by volume, of the three mix
// constituents. Only the ratios between the parts matter, not their
// absolute scale: 1:2:4 and 2:4:8 describe the same mix.
type MixRatio struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
}

// Densities holds the bulk density of each material in kg/m³.
type Densities struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
}

// CostTable holds flat per-unit costs: cement is priced per 50 kg bag,
// sand and aggregate per tonne.
type CostTable struct {
	CementPerBag      float64 `json:"cementPerBag"`
	SandPerTonne      float64 `json:"sandPerTonne"`
	AggregatePerTonne float64 `json:"aggregatePerTonne"`
}

// Input is the full set of estimation parameters. VolumeM3 and MixRatio are
// required; nil optional fields fall back to the package defaults.
type Input struct {
	// VolumeM3 is the desired finished (wet, compacted) volume in m³.
	VolumeM3  float64    `json:"volumeM3"`
	MixRatio  MixRatio   `json:"mixRatio"`
	Densities *Densities `json:"densities,omitempty"`
	// DryFactor converts the wet target volume to the larger loose dry
	// volume needed before mixing. Must be in (0, 3].
	DryFactor *float64 `json:"dryFactor,omitempty"`
	// WastageFactor is a percentage in [0, 50] added to every material
	// mass for spillage and handling loss.
	WastageFactor *float64   `json:"wastageFactor,omitempty"`
	Costs         *CostTable `json:"costs,omitempty"`
}

// Parameters is the fully resolved form of an Input, echoed on every Result
// so a stored estimate records exactly which values produced it.
type Parameters struct {
	VolumeM3      float64   `json:"volumeM3"`
	MixRatio      MixRatio  `json:"mixRatio"`
	Densities     Densities `json:"densities"`
	DryFactor     float64   `json:"dryFactor"`
	WastageFactor float64   `json:"wastageFactor"`
	Costs         CostTable `json:"costs"`
}

// MaterialResult is the per-material line of the bill of materials.
// Mass, Tonnes and Cost are wastage-inclusive. Bags is set for cement only.
type MaterialResult struct {
	Volume float64 `json:"volume"` // m³, 6 dp
	Mass   float64 `json:"mass"`   // kg, 2 dp
	Bags   *int    `json:"bags,omitempty"`
	Tonnes float64 `json:"tonnes"` // 3 dp
	Cost   float64 `json:"cost"`   // 2 dp
}

// Totals aggregates the three material lines. Volume is the dry-adjusted
// volume before wastage; Mass and EstimatedCost are wastage-inclusive.
type Totals struct {
	Volume        float64 `json:"volume"`
	Mass          float64 `json:"mass"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// Result is a complete, internally consistent bill of materials for one
// estimation run.
type Result struct {
	Cement     MaterialResult `json:"cement"`
	Sand       MaterialResult `json:"sand"`
	Aggregate  MaterialResult `json:"aggregate"`
	Totals     Totals         `json:"totals"`
	Parameters Parameters     `json:"parameters"`
}
