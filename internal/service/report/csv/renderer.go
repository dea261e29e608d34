package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/slabworks/concrete-planner/internal/estimation"
	"github.com/slabworks/concrete-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv"
}

func (r *Renderer) Render(data *types.BoMData) ([]byte, error) {
	var rows [][]string

	rows = append(rows, []string{"CONCRETE MATERIAL ESTIMATE"})
	rows = append(rows, []string{fmt.Sprintf("Generated: %s", data.GeneratedAt.Format(time.RFC3339))})
	rows = append(rows, []string{""})

	rows = r.addEstimateInfo(rows, data)
	rows = r.addParameters(rows, data.Result.Parameters)
	rows = r.addBillOfMaterials(rows, &data.Result)
	rows = r.addTotals(rows, data.Result.Totals)

	return r.convertRowsToCSV(rows)
}

func (r *Renderer) addEstimateInfo(rows [][]string, data *types.BoMData) [][]string {
	rows = append(rows, []string{"Estimate", "Value"})
	rows = append(rows, []string{"ID", data.EstimateID.String()})
	if data.Name != "" {
		rows = append(rows, []string{"Name", data.Name})
	}
	if data.Location != "" {
		rows = append(rows, []string{"Location", data.Location})
	}
	rows = append(rows, []string{""})
	return rows
}

func (r *Renderer) addParameters(rows [][]string, p estimation.Parameters) [][]string {
	rows = append(rows, []string{"PARAMETERS"})
	rows = append(rows, []string{""})
	rows = append(rows, []string{"Parameter", "Value"})
	rows = append(rows, []string{"Target volume (m³)", formatFloat(p.VolumeM3)})
	rows = append(rows, []string{"Mix ratio (cement:sand:aggregate)", fmt.Sprintf("%s:%s:%s",
		formatFloat(p.MixRatio.Cement), formatFloat(p.MixRatio.Sand), formatFloat(p.MixRatio.Aggregate))})
	rows = append(rows, []string{"Dry volume factor", formatFloat(p.DryFactor)})
	rows = append(rows, []string{"Wastage (%)", formatFloat(p.WastageFactor)})
	rows = append(rows, []string{"Cement density (kg/m³)", formatFloat(p.Densities.Cement)})
	rows = append(rows, []string{"Sand density (kg/m³)", formatFloat(p.Densities.Sand)})
	rows = append(rows, []string{"Aggregate density (kg/m³)", formatFloat(p.Densities.Aggregate)})
	rows = append(rows, []string{""})
	return rows
}

func (r *Renderer) addBillOfMaterials(rows [][]string, result *estimation.Result) [][]string {
	rows = append(rows, []string{"BILL OF MATERIALS"})
	rows = append(rows, []string{""})
	rows = append(rows, []string{"Material", "Volume (m³)", "Mass (kg)", "Units", "Tonnes", "Cost"})

	cementUnits := ""
	if result.Cement.Bags != nil {
		cementUnits = fmt.Sprintf("%d bags (50 kg)", *result.Cement.Bags)
	}
	rows = append(rows, []string{
		"Cement",
		formatFloat(result.Cement.Volume),
		formatFloat(result.Cement.Mass),
		cementUnits,
		formatFloat(result.Cement.Tonnes),
		formatFloat(result.Cement.Cost)})
	rows = append(rows, []string{
		"Sand",
		formatFloat(result.Sand.Volume),
		formatFloat(result.Sand.Mass),
		"",
		formatFloat(result.Sand.Tonnes),
		formatFloat(result.Sand.Cost)})
	rows = append(rows, []string{
		"Aggregate",
		formatFloat(result.Aggregate.Volume),
		formatFloat(result.Aggregate.Mass),
		"",
		formatFloat(result.Aggregate.Tonnes),
		formatFloat(result.Aggregate.Cost)})
	rows = append(rows, []string{""})
	return rows
}

func (r *Renderer) addTotals(rows [][]string, totals estimation.Totals) [][]string {
	rows = append(rows, []string{"TOTALS"})
	rows = append(rows, []string{""})
	rows = append(rows, []string{"Adjusted dry volume (m³)", formatFloat(totals.Volume)})
	rows = append(rows, []string{"Total mass (kg)", formatFloat(totals.Mass)})
	rows = append(rows, []string{"Estimated cost", formatFloat(totals.EstimatedCost)})
	return rows
}

func (r *Renderer) convertRowsToCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatFloat renders the shortest decimal representation that round-trips,
// so the exported value is exactly the computed one.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
