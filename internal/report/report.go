// Package report runs the calculations for the presentation layers: it checks
// inputs at the boundary, calls the calculation core and turns the core's
// degenerate results into errors the caller can show.
package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/ops-optimizer/internal/config"
	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/format"
	"github.com/iwvelando/ops-optimizer/pkg/operations"
	"github.com/iwvelando/ops-optimizer/pkg/validation"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ValidationMessage is the generic message shown for invalid numeric input.
const ValidationMessage = "values must be greater than 0"

// FormatMessage is shown when the task time list cannot be parsed.
const FormatMessage = "task times must contain only numbers separated by commas"

var (
	// ErrInvalidEOQInput marks economic order quantity inputs that are out of range.
	ErrInvalidEOQInput = errors.New("invalid economic order quantity input")

	// ErrInvalidLineBalanceInput marks line balance inputs that are out of range.
	ErrInvalidLineBalanceInput = errors.New("invalid line balance input")
)

// IsValidationError reports whether err came from out-of-range numeric input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEOQInput) || errors.Is(err, ErrInvalidLineBalanceInput)
}

// IsFormatError reports whether err came from an unparsable task time list.
func IsFormatError(err error) bool {
	return errors.Is(err, validation.ErrTaskTimeFormat)
}

// EOQInputs are the economic order quantity inputs.
type EOQInputs struct {
	Demand      float64 `json:"demand"`
	OrderCost   float64 `json:"orderCost"`
	HoldingCost float64 `json:"holdingCost"`
}

// EOQReport holds a computed economic order quantity and its cost curve.
type EOQReport struct {
	Inputs EOQInputs               `json:"inputs"`
	Result operations.EOQResult    `json:"result"`
	Curve  []operations.CurvePoint `json:"curve,omitempty"`
}

// Summary describes the ordering policy in one sentence.
func (r EOQReport) Summary() string {
	return fmt.Sprintf("Order %s %s times a year for a total annual cost of %s",
		format.Units(r.Result.OptimalQuantity), format.Number(r.Result.OrderCount), format.Currency(r.Result.TotalCost))
}

// LineBalanceInputs are the line balance inputs. TaskTimes is the raw
// comma-separated list.
type LineBalanceInputs struct {
	TaskTimes     string  `json:"taskTimes"`
	AvailableTime float64 `json:"availableTime"`
	Demand        float64 `json:"demand"`
}

// LineBalanceReport holds computed line balance metrics.
type LineBalanceReport struct {
	Inputs    LineBalanceInputs            `json:"inputs"`
	TaskTimes []float64                    `json:"taskTimes"`
	Result    operations.LineBalanceResult `json:"result"`
}

// Summary states how many stations the line needs.
func (r LineBalanceReport) Summary() string {
	noun := "stations are"
	if r.Result.MinStations == 1 {
		noun = "station is"
	}
	return fmt.Sprintf("%d %s theoretically required to meet demand", r.Result.MinStations, noun)
}

// Report collects the results of one run. Sections that were not requested or
// that failed are nil.
type Report struct {
	Mode        string             `json:"mode"`
	EOQ         *EOQReport         `json:"eoq,omitempty"`
	LineBalance *LineBalanceReport `json:"lineBalance,omitempty"`
}

// RunEOQ validates the inputs, computes the economic order quantity and
// samples points along its cost curve.
func RunEOQ(logger *zap.Logger, in EOQInputs, points int) (EOQReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rep := EOQReport{Inputs: in}
	if err := validation.ValidateEOQInputs(in.Demand, in.OrderCost, in.HoldingCost); err != nil {
		return rep, fmt.Errorf("%w: %w", ErrInvalidEOQInput, err)
	}

	result := operations.ComputeEOQ(in.Demand, in.OrderCost, in.HoldingCost)
	if result.IsZero() {
		return rep, ErrInvalidEOQInput
	}
	if !finite(result.OptimalQuantity, result.TotalCost, result.OrderCount) {
		return rep, fmt.Errorf("%w: result is too large to represent", ErrInvalidEOQInput)
	}
	curve := operations.CostCurve(in.Demand, in.OrderCost, in.HoldingCost, result.OptimalQuantity, points)
	for _, point := range curve {
		if !finite(point.Quantity, point.Cost) {
			return rep, fmt.Errorf("%w: cost curve is too large to represent", ErrInvalidEOQInput)
		}
	}
	rep.Result = result
	rep.Curve = curve

	logger.Debug("computed economic order quantity",
		zap.String("op", "report.RunEOQ"),
		zap.Float64("optimalQuantity", rep.Result.OptimalQuantity),
		zap.Float64("totalCost", rep.Result.TotalCost),
		zap.Int("curvePoints", len(rep.Curve)),
	)
	return rep, nil
}

// RunLineBalance parses the task times, validates the inputs and computes the
// line balance metrics. Parse failures wrap validation.ErrTaskTimeFormat;
// out-of-range numbers wrap ErrInvalidLineBalanceInput.
func RunLineBalance(logger *zap.Logger, in LineBalanceInputs) (LineBalanceReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rep := LineBalanceReport{Inputs: in}
	taskTimes, err := validation.ParseTaskTimes(in.TaskTimes)
	if err != nil {
		return rep, err
	}
	rep.TaskTimes = taskTimes

	if err := validation.ValidateLineBalanceInputs(taskTimes, in.AvailableTime, in.Demand); err != nil {
		return rep, fmt.Errorf("%w: %w", ErrInvalidLineBalanceInput, err)
	}

	result, ok := operations.ComputeLineBalance(taskTimes, in.AvailableTime, in.Demand)
	if !ok {
		return rep, ErrInvalidLineBalanceInput
	}
	if !finite(result.TotalTaskTime, result.TaktTime, result.TheoreticalStations, result.EfficiencyPercent, result.IdleTimePercent) {
		return rep, fmt.Errorf("%w: result is too large to represent", ErrInvalidLineBalanceInput)
	}
	rep.Result = result

	logger.Debug("computed line balance",
		zap.String("op", "report.RunLineBalance"),
		zap.Int("tasks", len(taskTimes)),
		zap.Float64("taktTime", result.TaktTime),
		zap.Int("minStations", result.MinStations),
	)
	return rep, nil
}

// Generate runs the calculations selected by mode using the configured
// inputs. An empty mode falls back to conf.Mode. When several calculations
// fail their errors are combined; the sections that succeeded are still
// returned.
func Generate(logger *zap.Logger, conf config.Configuration, mode string) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == "" {
		mode = conf.Mode
	}
	if err := validation.ValidateMode(mode); err != nil {
		return Report{}, err
	}

	rep := Report{Mode: mode}
	var errs error

	if mode == constants.ModeEOQ || mode == constants.ModeAll {
		eoq, err := RunEOQ(logger, EOQInputs{
			Demand:      conf.EOQ.Demand,
			OrderCost:   conf.EOQ.OrderCost,
			HoldingCost: conf.EOQ.HoldingCost,
		}, conf.Chart.Points)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("eoq: %w", err))
		} else {
			rep.EOQ = &eoq
		}
	}

	if mode == constants.ModeLineBalance || mode == constants.ModeAll {
		balance, err := RunLineBalance(logger, LineBalanceInputs{
			TaskTimes:     conf.LineBalance.TaskTimes,
			AvailableTime: conf.LineBalance.AvailableTime,
			Demand:        conf.LineBalance.Demand,
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line balance: %w", err))
		} else {
			rep.LineBalance = &balance
		}
	}

	logger.Info("report generated",
		zap.String("op", "report.Generate"),
		zap.String("mode", mode),
		zap.Bool("eoq", rep.EOQ != nil),
		zap.Bool("lineBalance", rep.LineBalance != nil),
		zap.Int("errors", len(multierr.Errors(errs))),
	)

	return rep, errs
}

// finite reports whether every value can be encoded as a JSON number.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
