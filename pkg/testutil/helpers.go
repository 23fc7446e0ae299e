// Package testutil provides common utility functions for testing.
package testutil

import (
	"encoding/csv"
	"math"
	"strings"

	"github.com/iwvelando/ops-optimizer/pkg/operations"
)

// ApproxEqual reports whether got is within tolerance of expected.
func ApproxEqual(got, expected, tolerance float64) bool {
	return math.Abs(got-expected) <= tolerance
}

// FindCSVValue returns the value of the "section","metric" row in CSV output.
// Returns false if the row is missing or the output does not parse.
func FindCSVValue(output, section, metric string) (string, bool) {
	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		return "", false
	}
	for _, record := range records {
		if len(record) == 3 && record[0] == section && record[1] == metric {
			return record[2], true
		}
	}
	return "", false
}

// MinCurvePoint returns the cheapest point of a cost curve.
// Returns nil for an empty curve.
func MinCurvePoint(curve []operations.CurvePoint) *operations.CurvePoint {
	var best *operations.CurvePoint
	for i := range curve {
		if best == nil || curve[i].Cost < best.Cost {
			best = &curve[i]
		}
	}
	return best
}
