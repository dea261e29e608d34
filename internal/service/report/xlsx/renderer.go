package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/slabworks/concrete-planner/internal/service/report/types"
)

const sheetName = "Bill of Materials"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Render(data *types.BoMData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	row := 1
	setRow := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	p := data.Result.Parameters
	cementUnits := ""
	if data.Result.Cement.Bags != nil {
		cementUnits = fmt.Sprintf("%d bags (50 kg)", *data.Result.Cement.Bags)
	}

	lines := [][]any{
		{"CONCRETE MATERIAL ESTIMATE"},
		{"Generated", data.GeneratedAt.Format(time.RFC3339)},
		{"Estimate ID", data.EstimateID.String()},
		{"Name", data.Name},
		{"Location", data.Location},
		{},
		{"Parameter", "Value"},
		{"Target volume (m³)", p.VolumeM3},
		{"Mix ratio cement", p.MixRatio.Cement},
		{"Mix ratio sand", p.MixRatio.Sand},
		{"Mix ratio aggregate", p.MixRatio.Aggregate},
		{"Dry volume factor", p.DryFactor},
		{"Wastage (%)", p.WastageFactor},
		{},
		{"Material", "Volume (m³)", "Mass (kg)", "Units", "Tonnes", "Cost"},
		{"Cement", data.Result.Cement.Volume, data.Result.Cement.Mass, cementUnits, data.Result.Cement.Tonnes, data.Result.Cement.Cost},
		{"Sand", data.Result.Sand.Volume, data.Result.Sand.Mass, "", data.Result.Sand.Tonnes, data.Result.Sand.Cost},
		{"Aggregate", data.Result.Aggregate.Volume, data.Result.Aggregate.Mass, "", data.Result.Aggregate.Tonnes, data.Result.Aggregate.Cost},
		{},
		{"Adjusted dry volume (m³)", data.Result.Totals.Volume},
		{"Total mass (kg)", data.Result.Totals.Mass},
		{"Estimated cost", data.Result.Totals.EstimatedCost},
	}
	for _, line := range lines {
		if err := setRow(line...); err != nil {
			return nil, fmt.Errorf("failed to write sheet row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
