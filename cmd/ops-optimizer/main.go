package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/ops-optimizer/internal/config"
	"github.com/iwvelando/ops-optimizer/internal/logging"
	"github.com/iwvelando/ops-optimizer/internal/report"
	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/output"
	"github.com/iwvelando/ops-optimizer/pkg/validation"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// overrides holds the flags that replace configured inputs. A nil field was
// not given on the command line.
type overrides struct {
	demand        *float64
	orderCost     *float64
	holdingCost   *float64
	taskTimes     *string
	availableTime *float64
	units         *float64
}

func (o overrides) apply(conf *config.Configuration) {
	if o.demand != nil {
		conf.EOQ.Demand = *o.demand
	}
	if o.orderCost != nil {
		conf.EOQ.OrderCost = *o.orderCost
	}
	if o.holdingCost != nil {
		conf.EOQ.HoldingCost = *o.holdingCost
	}
	if o.taskTimes != nil {
		conf.LineBalance.TaskTimes = *o.taskTimes
	}
	if o.availableTime != nil {
		conf.LineBalance.AvailableTime = *o.availableTime
	}
	if o.units != nil {
		conf.LineBalance.Demand = *o.units
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("ops-optimizer", flag.ContinueOnError)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	mode := flags.String("mode", "", "calculation to run: eoq, line-balance, all")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, json, xlsx")
	outputFile := flags.String("output-file", "", "workbook path for xlsx output")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	demand := flags.Float64("demand", 0, "annual demand (D) override")
	orderCost := flags.Float64("order-cost", 0, "cost per order (S) override")
	holdingCost := flags.Float64("holding-cost", 0, "annual holding cost per unit (H) override")
	tasks := flags.String("tasks", "", "comma-separated task times override")
	availableTime := flags.Float64("available-time", 0, "available production time override")
	units := flags.Float64("units", 0, "units required in the period override")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Only flags that were actually passed override the configuration.
	var ov overrides
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demand":
			ov.demand = demand
		case "order-cost":
			ov.orderCost = orderCost
		case "holding-cost":
			ov.holdingCost = holdingCost
		case "tasks":
			ov.taskTimes = tasks
		case "available-time":
			ov.availableTime = availableTime
		case "units":
			ov.units = units
		}
	})

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return 1
		}
		conf = config.Default()
	}
	ov.apply(conf)

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(), zap.String("op", "main"))
		return 1
	}

	workbookPath := conf.Output.File
	if *outputFile != "" {
		workbookPath = *outputFile
	}
	if workbookPath == "" {
		workbookPath = constants.DefaultWorkbookFile
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	rep, err := report.Generate(logger, *conf, *mode)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			logger.Error(userMessage(e),
				zap.String("op", "main"),
				zap.Error(e),
			)
		}
		return 1
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(stdout, rep)
	case constants.OutputFormatCSV:
		output.CsvFormat(stdout, rep)
	case constants.OutputFormatJSON:
		if err := output.JSON(stdout, rep); err != nil {
			logger.Error("failed to write JSON output", zap.String("op", "main"), zap.Error(err))
			return 1
		}
	case constants.OutputFormatXLSX:
		if err := output.WriteWorkbook(rep, workbookPath); err != nil {
			logger.Error("failed to write workbook", zap.String("op", "main"), zap.Error(err))
			return 1
		}
		logger.Info("workbook written",
			zap.String("op", "main"),
			zap.String("path", workbookPath),
		)
	}

	return 0
}

// userMessage picks the message shown for a calculation failure.
func userMessage(err error) string {
	switch {
	case report.IsFormatError(err):
		return report.FormatMessage
	case report.IsValidationError(err):
		return report.ValidationMessage
	default:
		return "calculation failed"
	}
}
