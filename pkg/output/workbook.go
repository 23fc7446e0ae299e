package output

import (
	"fmt"

	"github.com/iwvelando/ops-optimizer/internal/report"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in exported workbooks.
const (
	SheetEOQ         = "EOQ"
	SheetCostCurve   = "Cost Curve"
	SheetLineBalance = "Line Balance"
)

// Workbook builds an Excel workbook with one sheet per calculated section and
// a sheet holding the cost curve samples.
func Workbook(rep report.Report) (*excelize.File, error) {
	if rep.EOQ == nil && rep.LineBalance == nil {
		return nil, fmt.Errorf("nothing to export: report has no results")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// The default sheet is renamed to the first section written.
	first := true
	sheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if eoq := rep.EOQ; eoq != nil {
		if err := sheet(SheetEOQ); err != nil {
			return nil, err
		}
		rows := [][]interface{}{
			{"Metric", "Value"},
			{"Annual demand (D)", eoq.Inputs.Demand},
			{"Order cost (S)", eoq.Inputs.OrderCost},
			{"Holding cost (H)", eoq.Inputs.HoldingCost},
			{"Optimal quantity (Q*)", eoq.Result.OptimalQuantity},
			{"Total annual cost", eoq.Result.TotalCost},
			{"Orders per year", eoq.Result.OrderCount},
		}
		if err := writeRows(f, SheetEOQ, rows, headerStyle); err != nil {
			return nil, err
		}

		if len(eoq.Curve) > 0 {
			if err := sheet(SheetCostCurve); err != nil {
				return nil, err
			}
			curveRows := make([][]interface{}, 0, len(eoq.Curve)+1)
			curveRows = append(curveRows, []interface{}{"Quantity", "Total cost"})
			for _, point := range eoq.Curve {
				curveRows = append(curveRows, []interface{}{point.Quantity, point.Cost})
			}
			if err := writeRows(f, SheetCostCurve, curveRows, headerStyle); err != nil {
				return nil, err
			}
		}
	}

	if lb := rep.LineBalance; lb != nil {
		if err := sheet(SheetLineBalance); err != nil {
			return nil, err
		}
		rows := [][]interface{}{
			{"Metric", "Value"},
			{"Task times", lb.Inputs.TaskTimes},
			{"Available time", lb.Inputs.AvailableTime},
			{"Demand", lb.Inputs.Demand},
			{"Total task time", lb.Result.TotalTaskTime},
			{"Takt time", lb.Result.TaktTime},
			{"Theoretical stations", lb.Result.TheoreticalStations},
			{"Minimum stations", lb.Result.MinStations},
			{"Efficiency %", lb.Result.EfficiencyPercent},
			{"Idle time %", lb.Result.IdleTimePercent},
		}
		if err := writeRows(f, SheetLineBalance, rows, headerStyle); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(rep report.Report, path string) error {
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 25)
}
