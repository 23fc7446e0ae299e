package operations

import (
	"math"

	"github.com/iwvelando/ops-optimizer/pkg/mathutil"
)

// LineBalanceResult holds the production line balance metrics.
type LineBalanceResult struct {
	TaktTime            float64 `json:"taktTime"`
	TheoreticalStations float64 `json:"theoreticalStations"`
	MinStations         int     `json:"minStations"`
	EfficiencyPercent   float64 `json:"efficiencyPercent"`
	IdleTimePercent     float64 `json:"idleTimePercent"`
	TotalTaskTime       float64 `json:"totalTaskTime"`
}

// ComputeLineBalance derives takt time, station count, efficiency and idle time
// for a set of task times, the available time in the period and the units
// required in it. ok is false when there are no tasks or either the available
// time or the required units are not positive.
func ComputeLineBalance(taskTimes []float64, availableTime, requiredUnits float64) (result LineBalanceResult, ok bool) {
	if len(taskTimes) == 0 || requiredUnits <= 0 || availableTime <= 0 {
		return LineBalanceResult{}, false
	}

	total := mathutil.Sum(taskTimes)
	takt := availableTime / requiredUnits
	theoretical := total / takt

	// Partial stations do not exist.
	stations := int(math.Ceil(theoretical))

	efficiency := mathutil.CalculatePercentage(total, float64(stations)*takt)

	return LineBalanceResult{
		TaktTime:            mathutil.Round(takt),
		TheoreticalStations: mathutil.Round(theoretical),
		MinStations:         stations,
		EfficiencyPercent:   mathutil.Round(efficiency),
		IdleTimePercent:     mathutil.Round(100 - efficiency),
		TotalTaskTime:       mathutil.Round(total),
	}, true
}
