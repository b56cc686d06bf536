package payroll

import (
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SaveMonthRequest persists one month's live-calculated payroll. Overrides
// let the caller pin an explicit paid amount or paid flag per employee;
// everyone else gets the ceiling-to-5 default.
type SaveMonthRequest struct {
	salary.CalculateRequest
	Overrides []SaveOverride `json:"overrides,omitempty"`
}

type SaveOverride struct {
	EmployeeID string           `json:"employee_id"`
	PaidSalary *decimal.Decimal `json:"paid_salary,omitempty"`
	IsPaid     *bool            `json:"is_paid,omitempty"`
}

func (r *SaveMonthRequest) Validate() error {
	if err := r.CalculateRequest.Validate(); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	for _, o := range r.Overrides {
		if o.EmployeeID == "" {
			errs = append(errs, validator.ValidationError{Field: "overrides.employee_id", Message: "is required"})
		}
		if o.PaidSalary != nil && o.PaidSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overrides.paid_salary", Message: "must be non-negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveMonthResponse struct {
	Month    int `json:"month"`
	Year     int `json:"year"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type ExistsResponse struct {
	Exists      bool    `json:"exists"`
	RecordCount int     `json:"record_count"`
	DateSaved   *string `json:"date_saved,omitempty"`
}

type UpdatePaidRequest struct {
	ID         string          `json:"-"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	IsPaid     bool            `json:"is_paid"`
}

func (r *UpdatePaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaidAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePaidFields is what the repository actually writes for a paid update.
// The paid amount has already been through the ceiling-to-5 rule.
type UpdatePaidFields struct {
	PaidAmount decimal.Decimal
	IsPaid     bool
}

type PayRollResponse struct {
	ID          string `json:"id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	WorkingDays int    `json:"working_days"`
	Holidays    int    `json:"holidays"`

	salary.ResultResponse

	ActualPaidAmount decimal.Decimal `json:"actual_paid_amount"`
	IsPaid           bool            `json:"is_paid"`
	DateSaved        string          `json:"date_saved"`
}

type SavedMonthResponse struct {
	Month       int                        `json:"month"`
	Year        int                        `json:"year"`
	WorkingDays int                        `json:"working_days"`
	Holidays    int                        `json:"holidays"`
	Records     []PayRollResponse          `json:"records"`
	Rollup      salary.MonthRollupResponse `json:"rollup"`
}

type DeleteMonthResponse struct {
	Deleted bool  `json:"deleted"`
	Rows    int64 `json:"rows"`
}

// MapToResponse converts a PayRoll row to its transport shape.
func MapToResponse(p PayRoll) PayRollResponse {
	return PayRollResponse{
		ID:               p.ID,
		Month:            p.Month,
		Year:             p.Year,
		WorkingDays:      p.WorkingDays,
		Holidays:         p.Holidays,
		ResultResponse:   salary.MapToResponse(p.Result),
		ActualPaidAmount: p.ActualPaidAmount,
		IsPaid:           p.IsPaid,
		DateSaved:        p.DateSaved.Format(time.RFC3339),
	}
}
