package json

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatJSON
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

type document struct {
	EstimateID  uuid.UUID         `json:"estimateId"`
	Name        string            `json:"name,omitempty"`
	Location    string            `json:"location,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Results     estimation.Result `json:"results"`
}

func (r *Renderer) Render(data *types.BoMData) ([]byte, error) {
	doc := document{
		EstimateID:  data.EstimateID,
		Name:        data.Name,
		Location:    data.Location,
		GeneratedAt: data.GeneratedAt,
		Results:     data.Result,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}
