package response

import (
	"errors"
	"net/http"

	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/payroll"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoShiftAssigned):
		BadRequest(w, "Employee has no shift assigned", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrMissingClockTimes):
		BadRequest(w, "Check-in and check-out are required unless absent", nil)
	case errors.Is(err, attendance.ErrRangeTooLarge):
		BadRequest(w, "Recalculation range exceeds 93 days", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrNoEmployees):
		NotFound(w, "No active employees to calculate")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid calculation period", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNoSavedPayroll):
		NotFound(w, "No saved payroll for this month and year")
	case errors.Is(err, payroll.ErrNothingToDelete):
		NotFound(w, "No payroll rows exist for this month and year")
	case errors.Is(err, payroll.ErrEmployeeNotInPayroll):
		NotFound(w, "Employee has no row in the saved payroll")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
