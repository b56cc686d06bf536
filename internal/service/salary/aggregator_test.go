package salary

import (
	"testing"
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/adjustment"
	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestAggregateMonth(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
	}
	records := []attendance.Record{
		{
			EmployeeID:        "emp-1",
			WorkDate:          day(1),
			WorkedMinutes:     480,
			OvertimeMinutes:   intPtr(60),
			PermissionMinutes: 30,
		},
		{
			EmployeeID:            "emp-1",
			WorkDate:              day(2),
			WorkedMinutes:         450,
			LateMinutes:           intPtr(20),
			EarlyDepartureMinutes: intPtr(15),
		},
		{EmployeeID: "emp-1", WorkDate: day(3), IsAbsent: true},
		{EmployeeID: "emp-2", WorkDate: day(1), WorkedMinutes: 480},
	}
	adjustments := []adjustment.Adjustment{
		{EmployeeID: "emp-1", Kind: adjustment.KindBonus, Date: day(5), Amount: dec("150")},
		{EmployeeID: "emp-1", Kind: adjustment.KindBonus, Date: day(15), Amount: dec("50")},
		{EmployeeID: "emp-1", Kind: adjustment.KindDeduction, Date: day(10), Amount: dec("40")},
		{EmployeeID: "emp-1", Kind: adjustment.KindAdvance, Date: day(20), Amount: dec("200")},
		{EmployeeID: "emp-2", Kind: adjustment.KindAdvance, Date: day(7), Amount: dec("75")},
	}

	totals := AggregateMonth(records, adjustments)

	require.Len(t, totals, 2)

	first := totals["emp-1"]
	require.NotNil(t, first)
	assert.Equal(t, 2, first.PresentDays)
	assert.Equal(t, 1, first.AbsentDays)
	assert.Equal(t, 930, first.WorkedMinutes)
	assert.Equal(t, 60, first.OvertimeMinutes)
	assert.Equal(t, 20, first.LateMinutes)
	assert.Equal(t, 15, first.EarlyDepartureMinutes)
	assert.Equal(t, 30, first.PermissionMinutes)
	assertDecEqual(t, "200", first.TotalBonuses)
	assertDecEqual(t, "40", first.TotalDeductions)
	assertDecEqual(t, "200", first.TotalAdvances)
	assert.Len(t, first.BonusItems, 2)
	assert.Len(t, first.DeductionItems, 1)
	assert.Len(t, first.AdvanceItems, 1)

	second := totals["emp-2"]
	require.NotNil(t, second)
	assert.Equal(t, 1, second.PresentDays)
	assert.Equal(t, 480, second.WorkedMinutes)
	assertDecEqual(t, "75", second.TotalAdvances)
}

func TestAggregateMonth_AdjustmentOnlyEmployee(t *testing.T) {
	adjustments := []adjustment.Adjustment{
		{EmployeeID: "emp-3", Kind: adjustment.KindBonus, Amount: dec("100")},
	}

	totals := AggregateMonth(nil, adjustments)

	require.NotNil(t, totals["emp-3"])
	assert.Equal(t, 0, totals["emp-3"].PresentDays)
	assertDecEqual(t, "100", totals["emp-3"].TotalBonuses)
}

func TestAggregateMonth_Empty(t *testing.T) {
	totals := AggregateMonth(nil, nil)
	assert.Empty(t, totals)
}
