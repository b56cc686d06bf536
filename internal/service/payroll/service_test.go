package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/adjustment"
	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/payroll"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActiveWithShift(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetForMonth(_ context.Context, month, year int, employeeIDs []string) ([]attendance.Record, error) {
	allowed := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []attendance.Record
	for _, rec := range f.records {
		if allowed[rec.EmployeeID] && int(rec.WorkDate.Month()) == month && rec.WorkDate.Year() == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRange(_ context.Context, _, _ time.Time) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) UpdateDerived(_ context.Context, _ attendance.Record) error {
	return nil
}

type fakeAdjustmentRepo struct {
	adjustments []adjustment.Adjustment
}

func (f *fakeAdjustmentRepo) GetForMonth(_ context.Context, _, _ int, _ []string) ([]adjustment.Adjustment, error) {
	return f.adjustments, nil
}

type fakePayrollRepo struct {
	rows     map[string]payroll.PayRoll
	upserted []string
}

func (f *fakePayrollRepo) Exists(_ context.Context, month, year int) (payroll.ExistsInfo, error) {
	info := payroll.ExistsInfo{}
	for _, row := range f.rows {
		if row.Month == month && row.Year == year {
			info.Exists = true
			info.RecordCount++
			saved := row.DateSaved
			info.DateSaved = &saved
		}
	}
	return info, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.PayRoll, error) {
	row, ok := f.rows[id]
	if !ok {
		return payroll.PayRoll{}, payroll.ErrPayrollNotFound
	}
	return row, nil
}

func (f *fakePayrollRepo) Upsert(_ context.Context, p payroll.PayRoll) (bool, error) {
	f.upserted = append(f.upserted, p.EmployeeID)
	for id, row := range f.rows {
		if row.EmployeeID == p.EmployeeID && row.Month == p.Month && row.Year == p.Year {
			p.ID = id
			f.rows[id] = p
			return false, nil
		}
	}
	f.rows[p.ID] = p
	return true, nil
}

func (f *fakePayrollRepo) ListMonth(_ context.Context, month, year int, _ payroll.Filter) ([]payroll.PayRoll, error) {
	var out []payroll.PayRoll
	for _, row := range f.rows {
		if row.Month == month && row.Year == year {
			out = append(out, row)
		}
	}
	return out, nil
}

// paidStamp stands in for the timestamp the database writes on a paid update.
var paidStamp = time.Date(2026, 7, 2, 9, 30, 0, 0, time.UTC)

func (f *fakePayrollRepo) UpdatePaid(_ context.Context, id string, req payroll.UpdatePaidFields) (time.Time, error) {
	row, ok := f.rows[id]
	if !ok {
		return time.Time{}, payroll.ErrPayrollNotFound
	}
	row.ActualPaidAmount = req.PaidAmount
	row.IsPaid = req.IsPaid
	row.DateSaved = paidStamp
	f.rows[id] = row
	return paidStamp, nil
}

func (f *fakePayrollRepo) DeleteMonth(_ context.Context, month, year int) (int64, error) {
	var deleted int64
	for id, row := range f.rows {
		if row.Month == month && row.Year == year {
			delete(f.rows, id)
			deleted++
		}
	}
	return deleted, nil
}

func testEmployee(id, code string, monthly int64) employee.Employee {
	return employee.Employee{
		ID:            id,
		EmployeeCode:  code,
		FullName:      "Employee " + code,
		MonthlySalary: decimal.NewFromInt(monthly),
		Status:        employee.EmploymentStatusActive,
		Shift: &shift.Shift{
			Name:               "Day",
			StandardHours:      decimal.NewFromInt(8),
			CalculationType:    shift.CalculationHourly,
			OvertimeMultiplier: decimal.NewFromInt(1),
			LateMultiplier:     decimal.NewFromInt(1),
		},
	}
}

func newTestService() (*PayrollServiceImpl, *fakePayrollRepo, *fakeAttendanceRepo) {
	payrollRepo := &fakePayrollRepo{rows: map[string]payroll.PayRoll{}}
	attendanceRepo := &fakeAttendanceRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "2024-0001", 1760),
		testEmployee("emp-2", "2024-0002", 3520),
	}}
	svc := &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		adjustmentRepo: &fakeAdjustmentRepo{},
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
	return svc, payrollRepo, attendanceRepo
}

func workedDay(employeeID string, day, workedMinutes int) attendance.Record {
	return attendance.Record{
		EmployeeID:    employeeID,
		WorkDate:      time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC),
		WorkedMinutes: workedMinutes,
	}
}

func TestCalculateMonth(t *testing.T) {
	svc, _, attendanceRepo := newTestService()
	attendanceRepo.records = []attendance.Record{
		workedDay("emp-1", 1, 480),
		workedDay("emp-2", 1, 480),
	}

	resp, err := svc.CalculateMonth(context.Background(), salary.CalculateRequest{
		Month: 6, Year: 2026, WorkingDays: 22,
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Rollup.EmployeeCount)
	// 8h at 10/h and 8h at 20/h.
	assert.True(t, resp.Results[0].WorkedHoursSalary.Equal(decimal.NewFromInt(80)))
	assert.True(t, resp.Results[1].WorkedHoursSalary.Equal(decimal.NewFromInt(160)))
	assert.True(t, resp.Rollup.TotalWorkedHoursSalary.Equal(decimal.NewFromInt(240)))
}

func TestCalculateMonth_RejectsBadPeriod(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CalculateMonth(context.Background(), salary.CalculateRequest{
		Month: 13, Year: 2026, WorkingDays: 22,
	})
	assert.Error(t, err)
}

func TestSaveMonth_AppliesOverridesAndCounts(t *testing.T) {
	svc, payrollRepo, attendanceRepo := newTestService()
	attendanceRepo.records = []attendance.Record{
		workedDay("emp-1", 1, 480),
		workedDay("emp-2", 1, 480),
	}
	// An earlier save for emp-1 makes this pass an update, not an insert.
	payrollRepo.rows["pr-old"] = payroll.PayRoll{
		ID: "pr-old", EmployeeID: "emp-1", Month: 6, Year: 2026,
	}

	pinned := decimal.RequireFromString("123.45")
	paid := true
	resp, err := svc.SaveMonth(context.Background(), payroll.SaveMonthRequest{
		CalculateRequest: salary.CalculateRequest{Month: 6, Year: 2026, WorkingDays: 22},
		Overrides: []payroll.SaveOverride{
			{EmployeeID: "emp-2", PaidSalary: &pinned, IsPaid: &paid},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Inserted)

	byEmployee := map[string]payroll.PayRoll{}
	for _, row := range payrollRepo.rows {
		byEmployee[row.EmployeeID] = row
	}
	require.Len(t, byEmployee, 2)

	// emp-1 gets the default: net 80 ceiled to a multiple of 5.
	assert.True(t, byEmployee["emp-1"].ActualPaidAmount.Equal(decimal.NewFromInt(80)))
	assert.False(t, byEmployee["emp-1"].IsPaid)

	// emp-2's pinned amount bypasses the ceiling entirely.
	assert.True(t, byEmployee["emp-2"].ActualPaidAmount.Equal(pinned))
	assert.True(t, byEmployee["emp-2"].IsPaid)
}

func TestGetSaved_EmptyMonth(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetSaved(context.Background(), 6, 2026, payroll.Filter{})
	assert.ErrorIs(t, err, payroll.ErrNoSavedPayroll)
}

func TestUpdatePaid_AppliesCeiling(t *testing.T) {
	svc, payrollRepo, _ := newTestService()
	payrollRepo.rows["pr-1"] = payroll.PayRoll{
		ID: "pr-1", EmployeeID: "emp-1", Month: 6, Year: 2026,
	}

	resp, err := svc.UpdatePaid(context.Background(), payroll.UpdatePaidRequest{
		ID:         "pr-1",
		PaidAmount: decimal.RequireFromString("103"),
		IsPaid:     true,
	})
	require.NoError(t, err)

	assert.True(t, resp.ActualPaidAmount.Equal(decimal.RequireFromString("105")))
	assert.True(t, resp.IsPaid)
	assert.True(t, payrollRepo.rows["pr-1"].ActualPaidAmount.Equal(decimal.RequireFromString("105")))
	assert.Equal(t, paidStamp.Format(time.RFC3339), resp.DateSaved, "response carries the stored save time")
}

func TestDeleteMonth(t *testing.T) {
	svc, payrollRepo, _ := newTestService()
	payrollRepo.rows["pr-1"] = payroll.PayRoll{ID: "pr-1", EmployeeID: "emp-1", Month: 6, Year: 2026}
	payrollRepo.rows["pr-2"] = payroll.PayRoll{ID: "pr-2", EmployeeID: "emp-2", Month: 6, Year: 2026}
	payrollRepo.rows["pr-3"] = payroll.PayRoll{ID: "pr-3", EmployeeID: "emp-1", Month: 7, Year: 2026}

	resp, err := svc.DeleteMonth(context.Background(), 6, 2026)
	require.NoError(t, err)

	assert.True(t, resp.Deleted)
	assert.Equal(t, int64(2), resp.Rows)
	assert.Len(t, payrollRepo.rows, 1)

	resp, err = svc.DeleteMonth(context.Background(), 6, 2026)
	require.NoError(t, err)
	assert.False(t, resp.Deleted)
	assert.Equal(t, int64(0), resp.Rows)
}

func TestRecalculateOne_TouchesOnlyTargetRow(t *testing.T) {
	svc, payrollRepo, attendanceRepo := newTestService()
	attendanceRepo.records = []attendance.Record{workedDay("emp-1", 1, 480)}

	otherSaved := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	payrollRepo.rows["pr-1"] = payroll.PayRoll{
		ID: "pr-1", EmployeeID: "emp-1", Month: 6, Year: 2026,
		WorkingDays: 22, IsPaid: true,
		Result: salary.Result{EmployeeID: "emp-1"},
	}
	payrollRepo.rows["pr-2"] = payroll.PayRoll{
		ID: "pr-2", EmployeeID: "emp-2", Month: 6, Year: 2026,
		WorkingDays: 22, DateSaved: otherSaved,
		Result: salary.Result{EmployeeID: "emp-2"},
	}

	resp, err := svc.RecalculateOne(context.Background(), "pr-1")
	require.NoError(t, err)

	// 480 worked minutes at 10/h, paid amount ceiled to a multiple of 5.
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(80)))
	assert.True(t, resp.ActualPaidAmount.Equal(decimal.NewFromInt(80)))
	assert.True(t, resp.IsPaid, "paid flag survives recalculation")

	assert.Equal(t, []string{"emp-1"}, payrollRepo.upserted)
	assert.Equal(t, otherSaved, payrollRepo.rows["pr-2"].DateSaved, "other rows untouched")
}
