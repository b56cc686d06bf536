package salary

import (
	"log/slog"

	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

var (
	one              = decimal.NewFromInt(1)
	five             = decimal.NewFromInt(5)
	sixty            = decimal.NewFromInt(60)
	fallbackShiftHrs = decimal.NewFromInt(8)
)

// DeterminePolicy maps the two effective multipliers to a pricing policy.
// A multiplier of exactly 1 on either side means "no special rate", so
// opposing hours are netted before pricing; otherwise each side is priced
// independently.
func DeterminePolicy(overtimeMultiplier, lateMultiplier decimal.Decimal) salary.RatePolicy {
	if overtimeMultiplier.Equal(one) || lateMultiplier.Equal(one) {
		return salary.PolicyNetDifference
	}
	return salary.PolicyIndependent
}

// PaidAmount rounds a net salary up to the nearest multiple of 5. This is the
// default disbursement amount when the caller supplies no override.
func PaidAmount(netSalary decimal.Decimal) decimal.Decimal {
	return netSalary.Div(five).Ceil().Mul(five)
}

// CalculateEmployee prices one employee's aggregated month into a full salary
// breakdown. Pure arithmetic: no storage access, no clock reads.
func CalculateEmployee(emp employee.Employee, totals salary.MonthlyTotals, req salary.CalculateRequest) salary.Result {
	sh := emp.Shift
	if sh == nil {
		slog.Warn("employee has no shift assigned, using defaults",
			"employee_id", emp.ID,
			"employee_code", emp.EmployeeCode,
		)
		sh = &shift.Shift{
			StandardHours:            fallbackShiftHrs,
			CalculationType:          shift.CalculationHourly,
			OvertimeMultiplier:       shift.DefaultOvertimeMultiplier,
			LateMultiplier:           shift.DefaultLateMultiplier,
			EarlyDepartureMultiplier: shift.DefaultEarlyDepartureMultiplier,
		}
	}

	shiftHours := sh.StandardHours
	if !shiftHours.IsPositive() {
		shiftHours = fallbackShiftHrs
	}
	calcType := sh.CalculationType
	if calcType == "" {
		calcType = shift.CalculationHourly
	}

	overtimeMult := effectiveMultiplier(emp.OvertimeRateMultiplier, sh.OvertimeMultiplier, shift.DefaultOvertimeMultiplier)
	lateMult := effectiveMultiplier(emp.LateRateMultiplier, sh.LateMultiplier, shift.DefaultLateMultiplier)
	earlyDepMult := effectiveMultiplier(decimal.Zero, sh.EarlyDepartureMultiplier, shift.DefaultEarlyDepartureMultiplier)
	policy := DeterminePolicy(overtimeMult, lateMult)

	workingDays := decimal.NewFromInt(int64(req.WorkingDays))
	expectedHours := shiftHours.Mul(workingDays)

	salaryPerHour := decimal.Zero
	if expectedHours.IsPositive() {
		salaryPerHour = emp.MonthlySalary.Div(expectedHours).Round(2)
	}
	salaryPerDay := decimal.Zero
	if workingDays.IsPositive() {
		salaryPerDay = emp.MonthlySalary.Div(workingDays).Round(2)
	}

	workedHours := minutesToHours(totals.WorkedMinutes)
	overtimeHours := minutesToHours(totals.OvertimeMinutes)
	lateHours := minutesToHours(totals.LateMinutes)
	earlyDepHours := minutesToHours(totals.EarlyDepartureMinutes)
	permissionHours := minutesToHours(totals.PermissionMinutes)

	var overtimeAmount, lateDeduction, netAmount decimal.Decimal
	netHours := overtimeHours.Sub(lateHours)

	switch policy {
	case salary.PolicyNetDifference:
		if netHours.Sign() >= 0 {
			overtimeAmount = netHours.Mul(salaryPerHour).Mul(overtimeMult).Round(2)
			lateDeduction = decimal.Zero
			netAmount = overtimeAmount
		} else {
			lateDeduction = netHours.Abs().Mul(salaryPerHour).Mul(lateMult).Round(2)
			overtimeAmount = decimal.Zero
			netAmount = lateDeduction.Neg()
		}
	default:
		overtimeAmount = overtimeHours.Mul(salaryPerHour).Mul(overtimeMult).Round(2)
		lateDeduction = lateHours.Mul(salaryPerHour).Mul(lateMult).Round(2)
		netAmount = overtimeAmount.Sub(lateDeduction)
	}

	// Early departure is never netted against overtime, whatever the policy.
	earlyDepDeduction := earlyDepHours.Mul(salaryPerHour).Mul(earlyDepMult).Round(2)

	var workedHoursSalary decimal.Decimal
	if calcType == shift.CalculationDaily {
		workedHoursSalary = salaryPerDay.Mul(decimal.NewFromInt(int64(totals.PresentDays))).Round(2)
	} else {
		workedHoursSalary = salaryPerHour.Mul(workedHours).Round(2)
	}

	grossSalary := workedHoursSalary.Add(overtimeAmount).Add(totals.TotalBonuses)
	totalDeductionsAmount := lateDeduction.
		Add(earlyDepDeduction).
		Add(totals.TotalDeductions).
		Add(totals.TotalAdvances)
	netSalary := grossSalary.Sub(totalDeductionsAmount)

	return salary.Result{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		EmployeeCode:    emp.EmployeeCode,
		DepartmentName:  emp.DepartmentName,
		ShiftName:       sh.Name,
		CalculationType: calcType,
		Policy:          policy,

		MonthlySalary:        emp.MonthlySalary,
		SalaryPerHour:        salaryPerHour,
		SalaryPerDay:         salaryPerDay,
		ShiftHoursPerDay:     shiftHours,
		ExpectedWorkingHours: expectedHours,

		PresentDays: totals.PresentDays,
		AbsentDays:  totals.AbsentDays,

		WorkedMinutes:         totals.WorkedMinutes,
		WorkedHours:           workedHours,
		OvertimeMinutes:       totals.OvertimeMinutes,
		OvertimeHours:         overtimeHours,
		LateMinutes:           totals.LateMinutes,
		LateHours:             lateHours,
		EarlyDepartureMinutes: totals.EarlyDepartureMinutes,
		EarlyDepartureHours:   earlyDepHours,
		PermissionMinutes:     totals.PermissionMinutes,
		PermissionHours:       permissionHours,

		OvertimeMultiplier:       overtimeMult,
		LateMultiplier:           lateMult,
		EarlyDepartureMultiplier: earlyDepMult,

		OvertimeAmount:          overtimeAmount,
		LateDeduction:           lateDeduction,
		EarlyDepartureDeduction: earlyDepDeduction,
		NetDifferenceHours:      netHours,
		NetDifferenceAmount:     netAmount,

		TotalBonuses:    totals.TotalBonuses,
		TotalDeductions: totals.TotalDeductions,
		TotalAdvances:   totals.TotalAdvances,
		BonusItems:      totals.BonusItems,
		DeductionItems:  totals.DeductionItems,
		AdvanceItems:    totals.AdvanceItems,

		WorkedHoursSalary:     workedHoursSalary,
		GrossSalary:           grossSalary,
		TotalDeductionsAmount: totalDeductionsAmount,
		NetSalary:             netSalary,
	}
}

// Rollup sums every employee's figures for a month-wide report. No extra
// rounding; each figure already carries whatever precision it was priced at.
func Rollup(results []salary.Result) salary.MonthRollup {
	r := salary.MonthRollup{EmployeeCount: len(results)}
	for _, res := range results {
		r.TotalWorkedHoursSalary = r.TotalWorkedHoursSalary.Add(res.WorkedHoursSalary)
		r.TotalOvertimeAmount = r.TotalOvertimeAmount.Add(res.OvertimeAmount)
		r.TotalLateDeduction = r.TotalLateDeduction.Add(res.LateDeduction)
		r.TotalBonuses = r.TotalBonuses.Add(res.TotalBonuses)
		r.TotalDeductions = r.TotalDeductions.Add(res.TotalDeductions)
		r.TotalAdvances = r.TotalAdvances.Add(res.TotalAdvances)
		r.TotalGrossSalary = r.TotalGrossSalary.Add(res.GrossSalary)
		r.TotalNetSalary = r.TotalNetSalary.Add(res.NetSalary)
		r.TotalWorkedHours = r.TotalWorkedHours.Add(res.WorkedHours)
		r.TotalOvertimeHours = r.TotalOvertimeHours.Add(res.OvertimeHours)
		r.TotalLateHours = r.TotalLateHours.Add(res.LateHours)
	}
	return r
}

// effectiveMultiplier resolves the rate actually applied: an employee-level
// override wins when set, then the shift's rate, then the system default.
func effectiveMultiplier(employeeLevel, shiftLevel, fallback decimal.Decimal) decimal.Decimal {
	if employeeLevel.IsPositive() {
		return employeeLevel
	}
	if shiftLevel.IsPositive() {
		return shiftLevel
	}
	return fallback
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2)
}
