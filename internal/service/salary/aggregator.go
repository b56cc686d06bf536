package salary

import (
	"github.com/hrplus/payroll-backend-go/internal/domain/adjustment"
	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
)

// AggregateMonth folds one month of attendance rows and financial adjustments
// into per-employee totals, keyed by employee id. Days with no row at all are
// not inferred; present and absent counts come from the rows that exist.
func AggregateMonth(records []attendance.Record, adjustments []adjustment.Adjustment) map[string]*salary.MonthlyTotals {
	totals := make(map[string]*salary.MonthlyTotals)

	get := func(employeeID string) *salary.MonthlyTotals {
		t, ok := totals[employeeID]
		if !ok {
			t = &salary.MonthlyTotals{}
			totals[employeeID] = t
		}
		return t
	}

	for _, rec := range records {
		t := get(rec.EmployeeID)
		if rec.IsAbsent {
			t.AbsentDays++
			continue
		}
		t.PresentDays++
		t.WorkedMinutes += rec.WorkedMinutes
		t.PermissionMinutes += rec.PermissionMinutes
		if rec.OvertimeMinutes != nil {
			t.OvertimeMinutes += *rec.OvertimeMinutes
		}
		if rec.LateMinutes != nil {
			t.LateMinutes += *rec.LateMinutes
		}
		if rec.EarlyDepartureMinutes != nil {
			t.EarlyDepartureMinutes += *rec.EarlyDepartureMinutes
		}
	}

	for _, adj := range adjustments {
		t := get(adj.EmployeeID)
		item := salary.AdjustmentItem{Date: adj.Date, Amount: adj.Amount, Note: adj.Note}

		switch adj.Kind {
		case adjustment.KindBonus:
			t.TotalBonuses = t.TotalBonuses.Add(adj.Amount)
			t.BonusItems = append(t.BonusItems, item)
		case adjustment.KindDeduction:
			t.TotalDeductions = t.TotalDeductions.Add(adj.Amount)
			t.DeductionItems = append(t.DeductionItems, item)
		case adjustment.KindAdvance:
			t.TotalAdvances = t.TotalAdvances.Add(adj.Amount)
			t.AdvanceItems = append(t.AdvanceItems, item)
		}
	}

	return totals
}
