package operations

import (
	"math"
	"testing"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/mathutil"
)

func TestComputeEOQInvalidInputs(t *testing.T) {
	tests := []struct {
		name        string
		demand      float64
		orderCost   float64
		holdingCost float64
	}{
		{"Zero demand", 0, 50, 2.5},
		{"Zero order cost", 1000, 0, 2.5},
		{"Zero holding cost", 1000, 50, 0},
		{"Negative demand", -1000, 50, 2.5},
		{"Negative order cost", 1000, -50, 2.5},
		{"Negative holding cost", 1000, 50, -2.5},
		{"All zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeEOQ(tt.demand, tt.orderCost, tt.holdingCost)
			if !result.IsZero() {
				t.Errorf("ComputeEOQ(%v, %v, %v) = %+v, expected zero result", tt.demand, tt.orderCost, tt.holdingCost, result)
			}
		})
	}
}

func TestComputeEOQ(t *testing.T) {
	tests := []struct {
		name        string
		demand      float64
		orderCost   float64
		holdingCost float64
		expected    EOQResult
	}{
		{
			name:        "Textbook example",
			demand:      1000,
			orderCost:   50,
			holdingCost: 2.5,
			expected:    EOQResult{OptimalQuantity: 200, TotalCost: 500, OrderCount: 5},
		},
		{
			name:        "Irrational optimum",
			demand:      1200,
			orderCost:   100,
			holdingCost: 6,
			// sqrt(40000) = 200; cost 600 + 600
			expected: EOQResult{OptimalQuantity: 200, TotalCost: 1200, OrderCount: 6},
		},
		{
			name:        "Rounded outputs",
			demand:      500,
			orderCost:   30,
			holdingCost: 4,
			// sqrt(7500) = 86.6025...
			expected: EOQResult{OptimalQuantity: 86.6, TotalCost: 346.41, OrderCount: 5.77},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeEOQ(tt.demand, tt.orderCost, tt.holdingCost)
			if !mathutil.WithinTolerance(result.OptimalQuantity, tt.expected.OptimalQuantity, 0.01) {
				t.Errorf("OptimalQuantity = %v, expected %v", result.OptimalQuantity, tt.expected.OptimalQuantity)
			}
			if !mathutil.WithinTolerance(result.TotalCost, tt.expected.TotalCost, 0.01) {
				t.Errorf("TotalCost = %v, expected %v", result.TotalCost, tt.expected.TotalCost)
			}
			if !mathutil.WithinTolerance(result.OrderCount, tt.expected.OrderCount, 0.01) {
				t.Errorf("OrderCount = %v, expected %v", result.OrderCount, tt.expected.OrderCount)
			}
			if result.IsZero() {
				t.Errorf("valid inputs should not produce a zero result")
			}
		})
	}
}

func TestComputeEOQOrderCountTimesQuantityIsDemand(t *testing.T) {
	inputs := [][3]float64{
		{1000, 50, 2.5},
		{52000, 12.75, 0.4},
		{365, 8, 1.1},
		{1, 1, 0.1},
		{250000, 300, 17.3},
	}

	for _, in := range inputs {
		result := ComputeEOQ(in[0], in[1], in[2])
		product := result.OrderCount * result.OptimalQuantity
		// Each factor carries up to half a cent of rounding error.
		tolerance := 0.005*(result.OrderCount+result.OptimalQuantity) + 0.01
		if math.Abs(product-in[0]) > tolerance {
			t.Errorf("ComputeEOQ(%v): OrderCount*OptimalQuantity = %v, expected %v", in, product, in[0])
		}
	}
}

func TestComputeEOQIsIdempotent(t *testing.T) {
	first := ComputeEOQ(780, 42.5, 3.3)
	second := ComputeEOQ(780, 42.5, 3.3)
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestTotalCost(t *testing.T) {
	if got := TotalCost(200, 1000, 50, 2.5); got != 500 {
		t.Errorf("TotalCost at optimum = %v, expected 500", got)
	}
	if got := TotalCost(100, 1000, 50, 2.5); got != 625 {
		t.Errorf("TotalCost(100) = %v, expected 625", got)
	}
	if got := TotalCost(0, 1000, 50, 2.5); got != 0 {
		t.Errorf("TotalCost(0) = %v, expected 0", got)
	}
}

func TestCostCurve(t *testing.T) {
	curve := CostCurve(1000, 50, 2.5, 200, 101)
	if len(curve) != 101 {
		t.Fatalf("expected 101 points, got %d", len(curve))
	}

	if curve[0].Quantity != 100 {
		t.Errorf("first quantity = %v, expected 100", curve[0].Quantity)
	}
	if curve[len(curve)-1].Quantity != 300 {
		t.Errorf("last quantity = %v, expected 300", curve[len(curve)-1].Quantity)
	}

	// The middle sample sits on Q* and is the cheapest.
	mid := curve[50]
	if mid.Quantity != 200 || mid.Cost != 500 {
		t.Errorf("middle point = %+v, expected {200 500}", mid)
	}
	for _, p := range curve {
		if p.Cost < mid.Cost {
			t.Errorf("point %+v is cheaper than the optimum %+v", p, mid)
		}
	}
}

func TestCostCurveClampsLowerBound(t *testing.T) {
	curve := CostCurve(1, 1, 10, 1.5, 10)
	if len(curve) != 10 {
		t.Fatalf("expected 10 points, got %d", len(curve))
	}
	if curve[0].Quantity != 1 {
		t.Errorf("first quantity = %v, expected clamp to 1", curve[0].Quantity)
	}
}

func TestCostCurveCapsPoints(t *testing.T) {
	curve := CostCurve(1000, 50, 2.5, 200, 5_000_000)
	if len(curve) != constants.MaxCurvePoints {
		t.Fatalf("expected %d points, got %d", constants.MaxCurvePoints, len(curve))
	}
	if curve[0].Quantity != 100 || curve[len(curve)-1].Quantity != 300 {
		t.Errorf("capped curve should keep its endpoints, got %v and %v", curve[0].Quantity, curve[len(curve)-1].Quantity)
	}
}

func TestCostCurveDegenerate(t *testing.T) {
	if curve := CostCurve(1000, 50, 2.5, 0, 100); curve != nil {
		t.Errorf("expected nil curve for zero optimum, got %d points", len(curve))
	}
	if curve := CostCurve(1000, 50, 2.5, 200, 1); curve != nil {
		t.Errorf("expected nil curve for a single point, got %d points", len(curve))
	}
}
