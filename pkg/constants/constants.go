// Package constants provides shared constants for the ops-optimizer application.
package constants

// Rounding constants
const (
	// DecimalPlaces is the number of decimal places every reported metric is rounded to
	DecimalPlaces = 2

	// CurrencyTolerance is the tolerance for comparing rounded values (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// EOQ input defaults and minimums accepted at the input boundary
const (
	// DefaultAnnualDemand is the default annual demand (D)
	DefaultAnnualDemand = 1000.0

	// DefaultOrderCost is the default cost of placing one order (S)
	DefaultOrderCost = 50.0

	// DefaultHoldingCost is the default cost of holding one unit for a year (H)
	DefaultHoldingCost = 2.5

	// MinAnnualDemand is the smallest demand the input forms accept
	MinAnnualDemand = 1.0

	// MinOrderCost is the smallest order cost the input forms accept
	MinOrderCost = 1.0

	// MinHoldingCost is the smallest holding cost the input forms accept
	MinHoldingCost = 0.1
)

// Line balance input defaults
const (
	// DefaultAvailableTime is the default available production time in minutes
	DefaultAvailableTime = 480.0

	// DefaultRequiredUnits is the default demand for the period in units
	DefaultRequiredUnits = 120.0

	// DefaultTaskTimes is the default comma-separated list of task times
	DefaultTaskTimes = "5, 3, 4, 2, 6"

	// TaskTimeSeparator separates task times in textual input
	TaskTimeSeparator = ","
)

// Cost curve constants
const (
	// DefaultCurvePoints is the number of samples taken along the EOQ cost curve
	DefaultCurvePoints = 100

	// MinCurvePoints is the fewest samples that still describe a curve
	MinCurvePoints = 2

	// MaxCurvePoints caps the samples a single request or config may ask for
	MaxCurvePoints = 1000

	// CurveSpread is the fraction of Q* the curve extends on either side of it
	CurveSpread = 0.5

	// MinCurveQuantity is the lower clamp for sampled order quantities
	MinCurveQuantity = 1.0
)

// Calculation modes
const (
	// ModeEOQ runs only the economic order quantity calculation
	ModeEOQ = "eoq"

	// ModeLineBalance runs only the line balance calculation
	ModeLineBalance = "line-balance"

	// ModeAll runs every calculation
	ModeAll = "all"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatXLSX writes an Excel workbook
	OutputFormatXLSX = "xlsx"

	// DefaultWorkbookFile is the default target for xlsx output
	DefaultWorkbookFile = "ops-optimizer.xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. OPS_EOQ_DEMAND
	EnvPrefix = "OPS"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
