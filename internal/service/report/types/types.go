// Package types defines the shared contracts of the bill-of-materials
// renderers.
package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/concrete-planner/internal/estimation"
)

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// BoMData is everything a renderer may show: the estimate's display metadata
// and the engine result. Renderers reformat these values; they never
// recompute or alter them.
type BoMData struct {
	EstimateID  uuid.UUID
	Name        string
	Location    string
	GeneratedAt time.Time
	Result      estimation.Result
}

type Renderer interface {
	SupportedFormat() ReportFormat
	ContentType() string
	Render(data *BoMData) ([]byte, error)
}
