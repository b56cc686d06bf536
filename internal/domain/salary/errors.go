package salary

import "errors"

var (
	ErrNoEmployees      = errors.New("no active employees to calculate")
	ErrInvalidPeriod    = errors.New("invalid calculation period")
	ErrMissingShiftData = errors.New("shift configuration missing for employee")
)
