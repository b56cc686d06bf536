package attendance

import (
	"github.com/hrplus/payroll-backend-go/internal/pkg/validator"
)

const maxPermissionMinutes = 480

// RecordDayRequest is the attendance-entry payload. Times use "15:04".
type RecordDayRequest struct {
	EmployeeID        string  `json:"employee_id"`
	WorkDate          string  `json:"work_date"`
	IsAbsent          bool    `json:"is_absent"`
	CheckIn           *string `json:"check_in,omitempty"`
	CheckOut          *string `json:"check_out,omitempty"`
	PermissionMinutes int     `json:"permission_minutes"`
}

func (r *RecordDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.IsAbsent {
		if r.CheckIn == nil || *r.CheckIn == "" {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "is required unless absent"})
		} else if _, ok := validator.IsValidClock(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid time (HH:MM)"})
		}
		if r.CheckOut == nil || *r.CheckOut == "" {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "is required unless absent"})
		} else if _, ok := validator.IsValidClock(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid time (HH:MM)"})
		}
	}
	if r.PermissionMinutes < 0 || r.PermissionMinutes > maxPermissionMinutes {
		errs = append(errs, validator.ValidationError{Field: "permission_minutes", Message: "must be between 0 and 480"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecalculateRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *RecalculateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecalculateRangeResponse reports a batch outcome. The batch itself always
// succeeds; per-row failures land in Errors and the caller decides what that
// means.
type RecalculateRangeResponse struct {
	Processed int      `json:"processed"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

type RecordResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeCode          *string `json:"employee_code,omitempty"`
	WorkDate              string  `json:"work_date"`
	IsAbsent              bool    `json:"is_absent"`
	CheckIn               *string `json:"check_in,omitempty"`
	CheckOut              *string `json:"check_out,omitempty"`
	PermissionMinutes     int     `json:"permission_minutes"`
	WorkedMinutes         int     `json:"worked_minutes"`
	LateMinutes           *int    `json:"late_minutes,omitempty"`
	OvertimeMinutes       *int    `json:"overtime_minutes,omitempty"`
	EarlyDepartureMinutes *int    `json:"early_departure_minutes,omitempty"`
}

// MapToResponse converts a Record to its transport shape.
func MapToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:                    rec.ID,
		EmployeeID:            rec.EmployeeID,
		EmployeeCode:          rec.EmployeeCode,
		WorkDate:              rec.WorkDate.Format("2006-01-02"),
		IsAbsent:              rec.IsAbsent,
		PermissionMinutes:     rec.PermissionMinutes,
		WorkedMinutes:         rec.WorkedMinutes,
		LateMinutes:           rec.LateMinutes,
		OvertimeMinutes:       rec.OvertimeMinutes,
		EarlyDepartureMinutes: rec.EarlyDepartureMinutes,
	}
	if rec.CheckIn != nil {
		v := rec.CheckIn.Format("15:04")
		resp.CheckIn = &v
	}
	if rec.CheckOut != nil {
		v := rec.CheckOut.Format("15:04")
		resp.CheckOut = &v
	}
	return resp
}
