package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrNoSavedPayroll       = errors.New("no saved payroll for this month and year")
	ErrNothingToDelete      = errors.New("no payroll rows exist for this month and year")
	ErrEmployeeNotInPayroll = errors.New("employee has no row in the saved payroll")
)
