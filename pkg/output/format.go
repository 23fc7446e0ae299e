// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/ops-optimizer/internal/report"
	"github.com/iwvelando/ops-optimizer/pkg/format"
)

// PrettyFormat writes a human-readable rather than machine-readable summary.
// The cost curve is left to the machine-readable formats.
func PrettyFormat(w io.Writer, rep report.Report) {
	if rep.EOQ != nil {
		eoq := rep.EOQ
		fmt.Fprintf(w, "--- Economic Order Quantity ---\n")
		fmt.Fprintf(w, "Annual demand (D)      | %s\n", format.Number(eoq.Inputs.Demand))
		fmt.Fprintf(w, "Order cost (S)         | %s\n", format.Currency(eoq.Inputs.OrderCost))
		fmt.Fprintf(w, "Holding cost (H)       | %s\n", format.Currency(eoq.Inputs.HoldingCost))
		fmt.Fprintf(w, "Optimal quantity (Q*)  | %s\n", format.Units(eoq.Result.OptimalQuantity))
		fmt.Fprintf(w, "Total annual cost      | %s\n", format.Currency(eoq.Result.TotalCost))
		fmt.Fprintf(w, "Orders per year        | %s\n", format.Number(eoq.Result.OrderCount))
		fmt.Fprintf(w, "%s\n", eoq.Summary())
	}

	if rep.EOQ != nil && rep.LineBalance != nil {
		fmt.Fprintf(w, "\n")
	}

	if rep.LineBalance != nil {
		lb := rep.LineBalance
		fmt.Fprintf(w, "--- Line Balance ---\n")
		fmt.Fprintf(w, "Task times             | %s\n", strings.TrimSpace(lb.Inputs.TaskTimes))
		fmt.Fprintf(w, "Available time         | %s min\n", format.Number(lb.Inputs.AvailableTime))
		fmt.Fprintf(w, "Demand                 | %s\n", format.Units(lb.Inputs.Demand))
		fmt.Fprintf(w, "Total task time        | %s min\n", format.Number(lb.Result.TotalTaskTime))
		fmt.Fprintf(w, "Takt time              | %s\n", format.Rate(lb.Result.TaktTime))
		fmt.Fprintf(w, "Theoretical stations   | %s\n", format.Number(lb.Result.TheoreticalStations))
		fmt.Fprintf(w, "Minimum stations       | %d\n", lb.Result.MinStations)
		fmt.Fprintf(w, "Efficiency             | %s\n", format.Percent(lb.Result.EfficiencyPercent))
		fmt.Fprintf(w, "Idle time              | %s\n", format.Percent(lb.Result.IdleTimePercent))
		fmt.Fprintf(w, "%s\n", lb.Summary())
	}
}

// CsvFormat writes the results in comma-separated value format.
func CsvFormat(w io.Writer, rep report.Report) {
	_, _ = io.WriteString(w, CsvString(rep))
}

// CsvString renders the results in comma-separated value format: one
// "section","metric","value" row per metric, followed by the cost curve.
func CsvString(rep report.Report) string {
	var builder strings.Builder
	builder.WriteString(`"section","metric","value"` + "\n")

	row := func(section, metric, value string) {
		fmt.Fprintf(&builder, `"%s","%s","%s"`+"\n", section, metric, value)
	}

	if rep.EOQ != nil {
		eoq := rep.EOQ
		row("eoq", "demand", number(eoq.Inputs.Demand))
		row("eoq", "orderCost", number(eoq.Inputs.OrderCost))
		row("eoq", "holdingCost", number(eoq.Inputs.HoldingCost))
		row("eoq", "optimalQuantity", number(eoq.Result.OptimalQuantity))
		row("eoq", "totalCost", number(eoq.Result.TotalCost))
		row("eoq", "orderCount", number(eoq.Result.OrderCount))
	}

	if rep.LineBalance != nil {
		lb := rep.LineBalance
		row("lineBalance", "taskTimes", strings.TrimSpace(lb.Inputs.TaskTimes))
		row("lineBalance", "availableTime", number(lb.Inputs.AvailableTime))
		row("lineBalance", "demand", number(lb.Inputs.Demand))
		row("lineBalance", "totalTaskTime", number(lb.Result.TotalTaskTime))
		row("lineBalance", "taktTime", number(lb.Result.TaktTime))
		row("lineBalance", "theoreticalStations", number(lb.Result.TheoreticalStations))
		row("lineBalance", "minStations", strconv.Itoa(lb.Result.MinStations))
		row("lineBalance", "efficiencyPercent", number(lb.Result.EfficiencyPercent))
		row("lineBalance", "idleTimePercent", number(lb.Result.IdleTimePercent))
	}

	if rep.EOQ != nil && len(rep.EOQ.Curve) > 0 {
		builder.WriteString("\n" + `"quantity","totalCost"` + "\n")
		for _, point := range rep.EOQ.Curve {
			fmt.Fprintf(&builder, `"%s","%s"`+"\n", number(point.Quantity), number(point.Cost))
		}
	}

	return builder.String()
}

// JSON writes the results as indented JSON.
func JSON(w io.Writer, rep report.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func number(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
