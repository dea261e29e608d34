package service

import (
	"fmt"
	"time"

	"github.com/slabworks/concrete-planner/internal/service/report/csv"
	jsonreport "github.com/slabworks/concrete-planner/internal/service/report/json"
	"github.com/slabworks/concrete-planner/internal/service/report/types"
	"github.com/slabworks/concrete-planner/internal/service/report/xlsx"
	"github.com/slabworks/concrete-planner/internal/store/model"
	"github.com/slabworks/concrete-planner/pkg/metrics"
)

type ReportFormat = types.ReportFormat

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatJSON = types.ReportFormatJSON
	ReportFormatXLSX = types.ReportFormatXLSX
)

// ExportPayload is a rendered bill of materials ready to be written to the
// response.
type ExportPayload struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ExportService struct {
	renderers map[types.ReportFormat]types.Renderer
}

func NewExportService() *ExportService {
	service := &ExportService{
		renderers: make(map[types.ReportFormat]types.Renderer),
	}

	for _, r := range []types.Renderer{
		csv.NewRenderer(),
		jsonreport.NewRenderer(),
		xlsx.NewRenderer(),
	} {
		service.renderers[r.SupportedFormat()] = r
	}
	return service
}

// GenerateBoM renders a stored estimate in the requested format. Renderers
// only reformat the stored result; the numbers leave this function exactly
// as the engine produced them.
func (s *ExportService) GenerateBoM(estimate *model.Estimate, format ReportFormat) (*ExportPayload, error) {
	renderer, exists := s.renderers[format]
	if !exists {
		return nil, NewErrUnsupportedExportFormat(string(format))
	}

	data := &types.BoMData{
		EstimateID:  estimate.ID,
		Name:        estimate.Name,
		Location:    estimate.Location,
		GeneratedAt: time.Now().UTC(),
	}
	if estimate.Result != nil {
		data.Result = estimate.Result.Data
	}

	content, err := renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.IncreaseExportsRenderedTotal(string(format))
	return &ExportPayload{
		Filename:    fmt.Sprintf("estimate-%s.%s", estimate.ID, format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
