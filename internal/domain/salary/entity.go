package salary

import (
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// RatePolicy is the pricing rule applied to overtime and late hours. It is a
// pure function of the two effective multipliers, tagged once per calculation
// rather than branched on inline.
type RatePolicy string

const (
	// PolicyNetDifference nets overtime against late hours before pricing.
	// Chosen when either multiplier equals 1 ("no special rate").
	PolicyNetDifference RatePolicy = "net_difference"
	// PolicyIndependent prices each side on its own multiplier without
	// netting. Chosen when both multipliers differ from 1.
	PolicyIndependent RatePolicy = "independent"
)

// MonthlyTotals is one employee's aggregated month: summed day times plus
// summed financial adjustments. AbsentDays is a literal count of rows marked
// absent, never inferred from the calendar.
type MonthlyTotals struct {
	WorkedMinutes         int
	OvertimeMinutes       int
	LateMinutes           int
	EarlyDepartureMinutes int
	PermissionMinutes     int
	PresentDays           int
	AbsentDays            int

	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalAdvances   decimal.Decimal

	BonusItems     []AdjustmentItem
	DeductionItems []AdjustmentItem
	AdvanceItems   []AdjustmentItem
}

// AdjustmentItem is the itemized form kept on a salary result.
type AdjustmentItem struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
}

// Result is the fully itemized salary breakdown for one employee in one
// month. It is the single source of truth copied into persisted payroll rows.
type Result struct {
	EmployeeID      string
	EmployeeName    string
	EmployeeCode    string
	DepartmentName  *string
	ShiftName       string
	CalculationType shift.CalculationType
	Policy          RatePolicy

	MonthlySalary        decimal.Decimal
	SalaryPerHour        decimal.Decimal
	SalaryPerDay         decimal.Decimal
	ShiftHoursPerDay     decimal.Decimal
	ExpectedWorkingHours decimal.Decimal

	PresentDays int
	AbsentDays  int

	WorkedMinutes         int
	WorkedHours           decimal.Decimal
	OvertimeMinutes       int
	OvertimeHours         decimal.Decimal
	LateMinutes           int
	LateHours             decimal.Decimal
	EarlyDepartureMinutes int
	EarlyDepartureHours   decimal.Decimal
	PermissionMinutes     int
	PermissionHours       decimal.Decimal

	OvertimeMultiplier       decimal.Decimal
	LateMultiplier           decimal.Decimal
	EarlyDepartureMultiplier decimal.Decimal

	OvertimeAmount          decimal.Decimal
	LateDeduction           decimal.Decimal
	EarlyDepartureDeduction decimal.Decimal
	NetDifferenceHours      decimal.Decimal
	NetDifferenceAmount     decimal.Decimal

	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalAdvances   decimal.Decimal
	BonusItems      []AdjustmentItem
	DeductionItems  []AdjustmentItem
	AdvanceItems    []AdjustmentItem

	WorkedHoursSalary     decimal.Decimal
	GrossSalary           decimal.Decimal
	TotalDeductionsAmount decimal.Decimal
	NetSalary             decimal.Decimal
}

// MonthRollup sums every employee's figures for reporting. No rounding
// happens here beyond what each per-employee figure already carries.
type MonthRollup struct {
	EmployeeCount          int
	TotalWorkedHoursSalary decimal.Decimal
	TotalOvertimeAmount    decimal.Decimal
	TotalLateDeduction     decimal.Decimal
	TotalBonuses           decimal.Decimal
	TotalDeductions        decimal.Decimal
	TotalAdvances          decimal.Decimal
	TotalGrossSalary       decimal.Decimal
	TotalNetSalary         decimal.Decimal
	TotalWorkedHours       decimal.Decimal
	TotalOvertimeHours     decimal.Decimal
	TotalLateHours         decimal.Decimal
}
