package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"go.uber.org/multierr"
)

// ValidateEOQInputs enforces the minimums the input forms accept for the
// economic order quantity. Every violated bound is reported.
func ValidateEOQInputs(demand, orderCost, holdingCost float64) error {
	var err error
	err = multierr.Append(err, atLeast("demand", demand, constants.MinAnnualDemand))
	err = multierr.Append(err, atLeast("order cost", orderCost, constants.MinOrderCost))
	err = multierr.Append(err, atLeast("holding cost", holdingCost, constants.MinHoldingCost))
	return err
}

// ValidateLineBalanceInputs checks the available time, the demand and each task
// time. Every violation is reported.
func ValidateLineBalanceInputs(taskTimes []float64, availableTime, demand float64) error {
	var err error
	if len(taskTimes) == 0 {
		err = multierr.Append(err, errors.New("at least one task time is required"))
	}
	for i, t := range taskTimes {
		if t < 0 {
			err = multierr.Append(err, fmt.Errorf("task %d time must not be negative, got %v", i+1, t))
		}
	}
	err = multierr.Append(err, positive("available time", availableTime))
	err = multierr.Append(err, positive("demand", demand))
	return err
}

// Errors splits an error produced by this package into its violations.
func Errors(err error) []error {
	return multierr.Errors(err)
}

func atLeast(name string, value, minimum float64) error {
	if value < minimum {
		return fmt.Errorf("%s must be at least %v, got %v", name, minimum, value)
	}
	return nil
}

func positive(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %v", name, value)
	}
	return nil
}
