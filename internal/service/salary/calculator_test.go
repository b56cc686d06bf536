package salary

import (
	"testing"

	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "got %s, want %s", got, want)
}

func hourlyEmployee(monthly string, otMult, lateMult string) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		EmployeeCode:  "2024-0001",
		FullName:      "Test Employee",
		MonthlySalary: dec(monthly),
		Shift: &shift.Shift{
			Name:                     "Day",
			StandardHours:            decimal.NewFromInt(8),
			CalculationType:          shift.CalculationHourly,
			OvertimeMultiplier:       dec(otMult),
			LateMultiplier:           dec(lateMult),
			EarlyDepartureMultiplier: decimal.NewFromInt(1),
		},
	}
}

func calcRequest() salary.CalculateRequest {
	return salary.CalculateRequest{Month: 6, Year: 2026, WorkingDays: 22}
}

func TestDeterminePolicy(t *testing.T) {
	assert.Equal(t, salary.PolicyNetDifference, DeterminePolicy(dec("1"), dec("1")))
	assert.Equal(t, salary.PolicyNetDifference, DeterminePolicy(dec("1"), dec("1.5")))
	assert.Equal(t, salary.PolicyNetDifference, DeterminePolicy(dec("1.5"), dec("1")))
	assert.Equal(t, salary.PolicyIndependent, DeterminePolicy(dec("1.5"), dec("1.2")))
}

func TestPaidAmount_CeilsToMultipleOfFive(t *testing.T) {
	assertDecEqual(t, "105", PaidAmount(dec("103")))
	assertDecEqual(t, "100", PaidAmount(dec("100")))
	assertDecEqual(t, "105", PaidAmount(dec("100.01")))
	assertDecEqual(t, "0", PaidAmount(dec("0")))
}

func TestCalculateEmployee_NetDifference(t *testing.T) {
	// salary_per_hour = 1760 / (22 × 8) = 10
	emp := hourlyEmployee("1760", "1", "1.5")
	totals := salary.MonthlyTotals{
		OvertimeMinutes: 180,
		LateMinutes:     60,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assert.Equal(t, salary.PolicyNetDifference, res.Policy)
	assertDecEqual(t, "10", res.SalaryPerHour)
	assertDecEqual(t, "2", res.NetDifferenceHours)
	assertDecEqual(t, "20", res.OvertimeAmount)
	assertDecEqual(t, "0", res.LateDeduction)
	assertDecEqual(t, "20", res.NetDifferenceAmount)
}

func TestCalculateEmployee_NetDifferenceNegative(t *testing.T) {
	emp := hourlyEmployee("1760", "1.5", "1")
	totals := salary.MonthlyTotals{
		OvertimeMinutes: 60,
		LateMinutes:     180,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assert.Equal(t, salary.PolicyNetDifference, res.Policy)
	assertDecEqual(t, "0", res.OvertimeAmount)
	assertDecEqual(t, "20", res.LateDeduction)
	assertDecEqual(t, "-20", res.NetDifferenceAmount)
}

func TestCalculateEmployee_IndependentPricing(t *testing.T) {
	emp := hourlyEmployee("1760", "1.5", "1.2")
	totals := salary.MonthlyTotals{
		OvertimeMinutes: 180,
		LateMinutes:     60,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assert.Equal(t, salary.PolicyIndependent, res.Policy)
	assertDecEqual(t, "45", res.OvertimeAmount)
	assertDecEqual(t, "12", res.LateDeduction)
	assertDecEqual(t, "33", res.NetDifferenceAmount)
}

func TestCalculateEmployee_EarlyDepartureNeverNetted(t *testing.T) {
	emp := hourlyEmployee("1760", "1", "1")
	totals := salary.MonthlyTotals{
		OvertimeMinutes:       120,
		EarlyDepartureMinutes: 60,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	// Overtime pays out in full; the early hour is deducted separately.
	assertDecEqual(t, "20", res.OvertimeAmount)
	assertDecEqual(t, "10", res.EarlyDepartureDeduction)
}

func TestCalculateEmployee_DailyType(t *testing.T) {
	emp := hourlyEmployee("2200", "1", "1")
	emp.Shift.CalculationType = shift.CalculationDaily
	totals := salary.MonthlyTotals{
		PresentDays:   20,
		WorkedMinutes: 123, // should not matter for the daily base
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assertDecEqual(t, "100", res.SalaryPerDay)
	assertDecEqual(t, "2000", res.WorkedHoursSalary)
}

func TestCalculateEmployee_MonthlySixThousandScenario(t *testing.T) {
	emp := hourlyEmployee("6000", "1", "1")
	totals := salary.MonthlyTotals{
		OvertimeMinutes: 120,
		LateMinutes:     60,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assertDecEqual(t, "34.09", res.SalaryPerHour)
	assertDecEqual(t, "1", res.NetDifferenceHours)
	assertDecEqual(t, "34.09", res.OvertimeAmount)
	assertDecEqual(t, "0", res.LateDeduction)
	// The hour nets out once, not as both a credit and a debit.
	assertDecEqual(t, "34.09", res.NetSalary.Sub(res.WorkedHoursSalary))
}

func TestCalculateEmployee_NoShiftFallsBackToDefaults(t *testing.T) {
	emp := hourlyEmployee("1760", "1", "1")
	emp.Shift = nil

	res := CalculateEmployee(emp, salary.MonthlyTotals{}, calcRequest())

	assertDecEqual(t, "8", res.ShiftHoursPerDay)
	assert.Equal(t, shift.CalculationHourly, res.CalculationType)
	assertDecEqual(t, "10", res.SalaryPerHour)
}

func TestCalculateEmployee_EmployeeMultiplierOverridesShift(t *testing.T) {
	emp := hourlyEmployee("1760", "1", "1")
	emp.OvertimeRateMultiplier = dec("2")
	emp.LateRateMultiplier = dec("1.3")
	totals := salary.MonthlyTotals{
		OvertimeMinutes: 60,
		LateMinutes:     60,
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assert.Equal(t, salary.PolicyIndependent, res.Policy)
	assertDecEqual(t, "20", res.OvertimeAmount)
	assertDecEqual(t, "13", res.LateDeduction)
}

func TestCalculateEmployee_NetEqualsGrossMinusDeductions(t *testing.T) {
	emp := hourlyEmployee("1760", "1.5", "1.2")
	totals := salary.MonthlyTotals{
		WorkedMinutes:         9600,
		OvertimeMinutes:       150,
		LateMinutes:           45,
		EarlyDepartureMinutes: 30,
		TotalBonuses:          dec("250"),
		TotalDeductions:       dec("75"),
		TotalAdvances:         dec("120"),
	}

	res := CalculateEmployee(emp, totals, calcRequest())

	assertDecEqual(t, res.GrossSalary.Sub(res.TotalDeductionsAmount).String(), res.NetSalary)
}

func TestRollup(t *testing.T) {
	results := []salary.Result{
		{
			WorkedHoursSalary: dec("1000"),
			OvertimeAmount:    dec("50"),
			GrossSalary:       dec("1050"),
			NetSalary:         dec("1030"),
			WorkedHours:       dec("160"),
		},
		{
			WorkedHoursSalary: dec("2000"),
			LateDeduction:     dec("30"),
			GrossSalary:       dec("2000"),
			NetSalary:         dec("1970"),
			WorkedHours:       dec("168"),
		},
	}

	r := Rollup(results)

	assert.Equal(t, 2, r.EmployeeCount)
	assertDecEqual(t, "3000", r.TotalWorkedHoursSalary)
	assertDecEqual(t, "50", r.TotalOvertimeAmount)
	assertDecEqual(t, "30", r.TotalLateDeduction)
	assertDecEqual(t, "3050", r.TotalGrossSalary)
	assertDecEqual(t, "3000", r.TotalNetSalary)
	assertDecEqual(t, "328", r.TotalWorkedHours)
}
