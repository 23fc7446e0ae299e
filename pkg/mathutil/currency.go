// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, half away from zero. The value goes
// through its shortest decimal representation first, so 1.005 rounds to 1.01
// rather than to the 1.00 that binary float arithmetic would give.
func Round(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	return decimal.NewFromFloat(val).Round(constants.DecimalPlaces).InexactFloat64()
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Sum adds all values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// Linspace returns n evenly spaced values over [start, stop], endpoints included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	values[n-1] = stop
	return values
}
