// Package config defines the data structures related to configuration and
// includes functions for loading and checking it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for ops-optimizer.
type Configuration struct {
	Mode        string            `yaml:"mode,omitempty"`
	EOQ         EOQConfig         `yaml:"eoq"`
	LineBalance LineBalanceConfig `yaml:"lineBalance"`
	Chart       ChartConfig       `yaml:"chart,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	Output      OutputConfig      `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, xlsx
	File   string `yaml:"file,omitempty"`   // xlsx target
}

// EOQConfig holds the economic order quantity inputs.
type EOQConfig struct {
	Demand      float64 `yaml:"demand"`      // annual demand (D)
	OrderCost   float64 `yaml:"orderCost"`   // cost per order (S)
	HoldingCost float64 `yaml:"holdingCost"` // annual holding cost per unit (H)
}

// LineBalanceConfig holds the line balance inputs. TaskTimes stays textual so
// the same parser serves config files, flags and the web UI.
type LineBalanceConfig struct {
	TaskTimes     string  `yaml:"taskTimes"`
	AvailableTime float64 `yaml:"availableTime"`
	Demand        float64 `yaml:"demand"`
}

// ChartConfig controls the sampled cost curve.
type ChartConfig struct {
	Points int `yaml:"points"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys missing from the file keep their defaults and
// OPS_* environment variables override both.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// Default returns the built-in configuration with environment overrides applied.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Defaults are all scalar and always decode.
		panic(err)
	}
	return conf
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", constants.ModeAll)
	v.SetDefault("eoq.demand", constants.DefaultAnnualDemand)
	v.SetDefault("eoq.orderCost", constants.DefaultOrderCost)
	v.SetDefault("eoq.holdingCost", constants.DefaultHoldingCost)
	v.SetDefault("lineBalance.taskTimes", constants.DefaultTaskTimes)
	v.SetDefault("lineBalance.availableTime", constants.DefaultAvailableTime)
	v.SetDefault("lineBalance.demand", constants.DefaultRequiredUnits)
	v.SetDefault("chart.points", constants.DefaultCurvePoints)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.file", constants.DefaultWorkbookFile)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration checks the configured inputs and returns warnings.
// Invalid inputs are not fatal here: the calculations report them on their own.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateMode(conf.Mode); err != nil {
		warnings = append(warnings, err.Error())
	}

	for _, err := range validation.Errors(validation.ValidateEOQInputs(conf.EOQ.Demand, conf.EOQ.OrderCost, conf.EOQ.HoldingCost)) {
		warnings = append(warnings, "eoq: "+err.Error())
	}

	taskTimes, err := validation.ParseTaskTimes(conf.LineBalance.TaskTimes)
	if err != nil {
		warnings = append(warnings, "lineBalance: "+err.Error())
	} else {
		for _, err := range validation.Errors(validation.ValidateLineBalanceInputs(taskTimes, conf.LineBalance.AvailableTime, conf.LineBalance.Demand)) {
			warnings = append(warnings, "lineBalance: "+err.Error())
		}
	}

	if conf.Chart.Points < constants.MinCurvePoints {
		warnings = append(warnings, fmt.Sprintf("chart: points must be at least %d to draw a curve, got %d", constants.MinCurvePoints, conf.Chart.Points))
	} else if conf.Chart.Points > constants.MaxCurvePoints {
		warnings = append(warnings, fmt.Sprintf("chart: points above %d are capped, got %d", constants.MaxCurvePoints, conf.Chart.Points))
	}

	return warnings
}
