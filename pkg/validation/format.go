// Package validation provides input validation for the presentation layers.
// The calculation core never rejects input; it returns degenerate results
// instead. The checks here run before the core so the caller can explain what
// was wrong.
package validation

import (
	"fmt"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
)

var outputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatJSON,
	constants.OutputFormatXLSX,
}

var modes = []string{
	constants.ModeEOQ,
	constants.ModeLineBalance,
	constants.ModeAll,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if !contains(outputFormats, format) {
		return fmt.Errorf("expected output format of %v, got %s", outputFormats, format)
	}
	return nil
}

// ValidateMode checks if the calculation mode is supported.
func ValidateMode(mode string) error {
	if !contains(modes, mode) {
		return fmt.Errorf("expected mode of %v, got %s", modes, mode)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
