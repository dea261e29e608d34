package model

// ClassUsage is one row of the per-class usage breakdown: how many estimates
// an organization stored for a given concrete class.
type ClassUsage struct {
	MixClass  string
	Estimates int64
}

// EstimateStats is the aggregate view backing the dashboard endpoint.
type EstimateStats struct {
	Projects           int64
	Estimates          int64
	TotalVolumeM3      float64
	TotalEstimatedCost float64
	UsageByClass       []ClassUsage
}
