// Package operations implements the inventory and production-line calculations.
// Every function is pure: results depend only on the arguments, so they are
// safe to call concurrently without coordination.
package operations

import (
	"math"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/mathutil"
)

// EOQResult holds the economic order quantity metrics.
// An all-zero result means at least one input was not positive.
type EOQResult struct {
	OptimalQuantity float64 `json:"optimalQuantity"`
	TotalCost       float64 `json:"totalCost"`
	OrderCount      float64 `json:"orderCount"`
}

// IsZero reports whether r is the degenerate result returned for invalid input.
func (r EOQResult) IsZero() bool {
	return r == EOQResult{}
}

// CurvePoint is one sample of the total cost curve.
type CurvePoint struct {
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// ComputeEOQ calculates the economic order quantity for an annual demand, the
// cost of placing one order and the cost of holding one unit for a year.
// Non-positive inputs yield a zero EOQResult.
func ComputeEOQ(demand, orderCost, holdingCost float64) EOQResult {
	if demand <= 0 || orderCost <= 0 || holdingCost <= 0 {
		return EOQResult{}
	}

	optimal := math.Sqrt(2 * demand * orderCost / holdingCost)

	return EOQResult{
		OptimalQuantity: mathutil.Round(optimal),
		TotalCost:       mathutil.Round(TotalCost(optimal, demand, orderCost, holdingCost)),
		OrderCount:      mathutil.Round(demand / optimal),
	}
}

// TotalCost is the annual holding plus ordering cost when ordering in lots of
// quantity units. It returns 0 for a non-positive quantity.
func TotalCost(quantity, demand, orderCost, holdingCost float64) float64 {
	if quantity <= 0 {
		return 0
	}
	return (quantity/2)*holdingCost + (demand/quantity)*orderCost
}

// CostCurve samples the total cost curve around the optimal quantity over
// [max(1, Q*-0.5Q*), Q*+0.5Q*]. It returns nil when there is no optimum to
// centre on or fewer than two points are requested. Requests above
// constants.MaxCurvePoints are clamped to it.
func CostCurve(demand, orderCost, holdingCost, optimal float64, points int) []CurvePoint {
	if optimal <= 0 || points < constants.MinCurvePoints {
		return nil
	}
	if points > constants.MaxCurvePoints {
		points = constants.MaxCurvePoints
	}

	low := mathutil.Max(constants.MinCurveQuantity, optimal-optimal*constants.CurveSpread)
	high := optimal + optimal*constants.CurveSpread

	quantities := mathutil.Linspace(low, high, points)
	curve := make([]CurvePoint, len(quantities))
	for i, q := range quantities {
		curve[i] = CurvePoint{
			Quantity: mathutil.Round(q),
			Cost:     mathutil.Round(TotalCost(q, demand, orderCost, holdingCost)),
		}
	}
	return curve
}
