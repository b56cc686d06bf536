package salary

import (
	"github.com/hrplus/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateRequest is the caller-facing calculation configuration. Working
// days and holidays are supplied here, never derived from the calendar.
type CalculateRequest struct {
	Month       int `json:"month"`
	Year        int `json:"year"`
	WorkingDays int `json:"working_days"`
	Holidays    int `json:"holidays"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if r.WorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be greater than 0"})
	}
	if r.Holidays < 0 {
		errs = append(errs, validator.ValidationError{Field: "holidays", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResultResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	EmployeeCode    string  `json:"employee_code"`
	DepartmentName  *string `json:"department_name,omitempty"`
	ShiftName       string  `json:"shift_name"`
	CalculationType string  `json:"calculation_type"`
	Policy          string  `json:"rate_policy"`

	MonthlySalary        decimal.Decimal `json:"monthly_salary"`
	SalaryPerHour        decimal.Decimal `json:"salary_per_hour"`
	SalaryPerDay         decimal.Decimal `json:"salary_per_day"`
	ShiftHoursPerDay     decimal.Decimal `json:"shift_hours_per_day"`
	ExpectedWorkingHours decimal.Decimal `json:"expected_working_hours"`

	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`

	WorkedMinutes         int             `json:"worked_minutes"`
	WorkedHours           decimal.Decimal `json:"worked_hours"`
	OvertimeMinutes       int             `json:"overtime_minutes"`
	OvertimeHours         decimal.Decimal `json:"overtime_hours"`
	LateMinutes           int             `json:"late_minutes"`
	LateHours             decimal.Decimal `json:"late_hours"`
	EarlyDepartureMinutes int             `json:"early_departure_minutes"`
	EarlyDepartureHours   decimal.Decimal `json:"early_departure_hours"`
	PermissionMinutes     int             `json:"permission_minutes"`
	PermissionHours       decimal.Decimal `json:"permission_hours"`

	OvertimeMultiplier       decimal.Decimal `json:"overtime_multiplier"`
	LateMultiplier           decimal.Decimal `json:"late_multiplier"`
	EarlyDepartureMultiplier decimal.Decimal `json:"early_departure_multiplier"`

	OvertimeAmount          decimal.Decimal `json:"overtime_amount"`
	LateDeduction           decimal.Decimal `json:"late_deduction"`
	EarlyDepartureDeduction decimal.Decimal `json:"early_departure_deduction"`
	NetDifferenceHours      decimal.Decimal `json:"net_difference_hours"`
	NetDifferenceAmount     decimal.Decimal `json:"net_difference_amount"`

	TotalBonuses    decimal.Decimal  `json:"total_bonuses"`
	TotalDeductions decimal.Decimal  `json:"total_deductions"`
	TotalAdvances   decimal.Decimal  `json:"total_advances"`
	BonusItems      []AdjustmentItem `json:"bonus_items,omitempty"`
	DeductionItems  []AdjustmentItem `json:"deduction_items,omitempty"`
	AdvanceItems    []AdjustmentItem `json:"advance_items,omitempty"`

	WorkedHoursSalary     decimal.Decimal `json:"worked_hours_salary"`
	GrossSalary           decimal.Decimal `json:"gross_salary"`
	TotalDeductionsAmount decimal.Decimal `json:"total_deductions_amount"`
	NetSalary             decimal.Decimal `json:"net_salary"`
}

type MonthRollupResponse struct {
	EmployeeCount          int             `json:"employee_count"`
	TotalWorkedHoursSalary decimal.Decimal `json:"total_worked_hours_salary"`
	TotalOvertimeAmount    decimal.Decimal `json:"total_overtime_amount"`
	TotalLateDeduction     decimal.Decimal `json:"total_late_deduction"`
	TotalBonuses           decimal.Decimal `json:"total_bonuses"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`
	TotalAdvances          decimal.Decimal `json:"total_advances"`
	TotalGrossSalary       decimal.Decimal `json:"total_gross_salary"`
	TotalNetSalary         decimal.Decimal `json:"total_net_salary"`
	TotalWorkedHours       decimal.Decimal `json:"total_worked_hours"`
	TotalOvertimeHours     decimal.Decimal `json:"total_overtime_hours"`
	TotalLateHours         decimal.Decimal `json:"total_late_hours"`
}

type CalculateMonthResponse struct {
	Month       int                 `json:"month"`
	Year        int                 `json:"year"`
	WorkingDays int                 `json:"working_days"`
	Holidays    int                 `json:"holidays"`
	Results     []ResultResponse    `json:"results"`
	Rollup      MonthRollupResponse `json:"rollup"`
}

// MapRollupToResponse converts a MonthRollup to its transport shape.
func MapRollupToResponse(r MonthRollup) MonthRollupResponse {
	return MonthRollupResponse{
		EmployeeCount:          r.EmployeeCount,
		TotalWorkedHoursSalary: r.TotalWorkedHoursSalary,
		TotalOvertimeAmount:    r.TotalOvertimeAmount,
		TotalLateDeduction:     r.TotalLateDeduction,
		TotalBonuses:           r.TotalBonuses,
		TotalDeductions:        r.TotalDeductions,
		TotalAdvances:          r.TotalAdvances,
		TotalGrossSalary:       r.TotalGrossSalary,
		TotalNetSalary:         r.TotalNetSalary,
		TotalWorkedHours:       r.TotalWorkedHours,
		TotalOvertimeHours:     r.TotalOvertimeHours,
		TotalLateHours:         r.TotalLateHours,
	}
}

// MapToResponse converts a Result to its transport shape.
func MapToResponse(r Result) ResultResponse {
	return ResultResponse{
		EmployeeID:               r.EmployeeID,
		EmployeeName:             r.EmployeeName,
		EmployeeCode:             r.EmployeeCode,
		DepartmentName:           r.DepartmentName,
		ShiftName:                r.ShiftName,
		CalculationType:          string(r.CalculationType),
		Policy:                   string(r.Policy),
		MonthlySalary:            r.MonthlySalary,
		SalaryPerHour:            r.SalaryPerHour,
		SalaryPerDay:             r.SalaryPerDay,
		ShiftHoursPerDay:         r.ShiftHoursPerDay,
		ExpectedWorkingHours:     r.ExpectedWorkingHours,
		PresentDays:              r.PresentDays,
		AbsentDays:               r.AbsentDays,
		WorkedMinutes:            r.WorkedMinutes,
		WorkedHours:              r.WorkedHours,
		OvertimeMinutes:          r.OvertimeMinutes,
		OvertimeHours:            r.OvertimeHours,
		LateMinutes:              r.LateMinutes,
		LateHours:                r.LateHours,
		EarlyDepartureMinutes:    r.EarlyDepartureMinutes,
		EarlyDepartureHours:      r.EarlyDepartureHours,
		PermissionMinutes:        r.PermissionMinutes,
		PermissionHours:          r.PermissionHours,
		OvertimeMultiplier:       r.OvertimeMultiplier,
		LateMultiplier:           r.LateMultiplier,
		EarlyDepartureMultiplier: r.EarlyDepartureMultiplier,
		OvertimeAmount:           r.OvertimeAmount,
		LateDeduction:            r.LateDeduction,
		EarlyDepartureDeduction:  r.EarlyDepartureDeduction,
		NetDifferenceHours:       r.NetDifferenceHours,
		NetDifferenceAmount:      r.NetDifferenceAmount,
		TotalBonuses:             r.TotalBonuses,
		TotalDeductions:          r.TotalDeductions,
		TotalAdvances:            r.TotalAdvances,
		BonusItems:               r.BonusItems,
		DeductionItems:           r.DeductionItems,
		AdvanceItems:             r.AdvanceItems,
		WorkedHoursSalary:        r.WorkedHoursSalary,
		GrossSalary:              r.GrossSalary,
		TotalDeductionsAmount:    r.TotalDeductionsAmount,
		NetSalary:                r.NetSalary,
	}
}
