package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoShiftAssigned  = errors.New("employee has no shift assigned")
)
