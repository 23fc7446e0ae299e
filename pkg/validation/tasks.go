package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
)

// ErrTaskTimeFormat is returned when a task time list contains something
// other than comma-separated numbers.
var ErrTaskTimeFormat = errors.New("task times must be numbers separated by commas")

// ParseTaskTimes converts text such as "2.5, 3.0, 1.5" into task times.
// Whitespace around each entry is ignored; an empty entry is a format error.
// Only decimal notation is accepted, so hexadecimal floats are rejected.
func ParseTaskTimes(text string) ([]float64, error) {
	tokens := strings.Split(text, constants.TaskTimeSeparator)
	times := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		trimmed := strings.TrimSpace(token)
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || isHex(trimmed) || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: entry %d %q is not a number", ErrTaskTimeFormat, i+1, trimmed)
		}
		times = append(times, value)
	}
	return times, nil
}

// FormatTaskTimes renders task times in the form ParseTaskTimes accepts.
func FormatTaskTimes(times []float64) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = strconv.FormatFloat(t, 'f', -1, 64)
	}
	return strings.Join(parts, constants.TaskTimeSeparator+" ")
}

func isHex(token string) bool {
	digits := strings.TrimLeft(token, "+-")
	return len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X')
}
