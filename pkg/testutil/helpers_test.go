package testutil

import (
	"testing"

	"github.com/iwvelando/ops-optimizer/pkg/operations"
)

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		got, expected, tolerance float64
		want                     bool
	}{
		{200, 200, 0, true},
		{200.004, 200, 0.005, true},
		{199.99, 200, 0.005, false},
		{-1, 1, 1.5, false},
	}

	for _, tt := range tests {
		if got := ApproxEqual(tt.got, tt.expected, tt.tolerance); got != tt.want {
			t.Errorf("ApproxEqual(%v, %v, %v) = %v, expected %v", tt.got, tt.expected, tt.tolerance, got, tt.want)
		}
	}
}

func TestFindCSVValue(t *testing.T) {
	output := `"section","metric","value"
"eoq","optimalQuantity","200.00"
"lineBalance","minStations","6"
`

	value, ok := FindCSVValue(output, "lineBalance", "minStations")
	if !ok || value != "6" {
		t.Errorf("FindCSVValue() = %q, %v, expected \"6\", true", value, ok)
	}

	if _, ok := FindCSVValue(output, "eoq", "orderCount"); ok {
		t.Error("expected missing metric to be reported as not found")
	}

	if _, ok := FindCSVValue(`"unterminated`, "eoq", "demand"); ok {
		t.Error("expected malformed output to be reported as not found")
	}
}

func TestMinCurvePoint(t *testing.T) {
	if MinCurvePoint(nil) != nil {
		t.Error("expected nil for an empty curve")
	}

	curve := []operations.CurvePoint{
		{Quantity: 100, Cost: 625},
		{Quantity: 200, Cost: 500},
		{Quantity: 300, Cost: 541.67},
	}
	best := MinCurvePoint(curve)
	if best == nil || best.Quantity != 200 {
		t.Errorf("MinCurvePoint() = %+v, expected quantity 200", best)
	}
}
