package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrplus/payroll-backend-go/internal/domain/adjustment"
	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/payroll"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
	"github.com/hrplus/payroll-backend-go/internal/repository/postgresql"
	salarysvc "github.com/hrplus/payroll-backend-go/internal/service/salary"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	adjustmentRepo adjustment.AdjustmentRepository

	// withTx wraps a unit of work in a database transaction.
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		adjustmentRepo: adjustmentRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *PayrollServiceImpl) CalculateMonth(ctx context.Context, req salary.CalculateRequest) (salary.CalculateMonthResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.CalculateMonthResponse{}, err
	}

	results, err := s.calculateResults(ctx, req)
	if err != nil {
		return salary.CalculateMonthResponse{}, err
	}

	resp := salary.CalculateMonthResponse{
		Month:       req.Month,
		Year:        req.Year,
		WorkingDays: req.WorkingDays,
		Holidays:    req.Holidays,
	}
	for _, r := range results {
		resp.Results = append(resp.Results, salary.MapToResponse(r))
	}
	resp.Rollup = salary.MapRollupToResponse(salarysvc.Rollup(results))

	return resp, nil
}

func (s *PayrollServiceImpl) SaveMonth(ctx context.Context, req payroll.SaveMonthRequest) (payroll.SaveMonthResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SaveMonthResponse{}, err
	}

	results, err := s.calculateResults(ctx, req.CalculateRequest)
	if err != nil {
		return payroll.SaveMonthResponse{}, err
	}

	overrides := make(map[string]payroll.SaveOverride, len(req.Overrides))
	for _, o := range req.Overrides {
		overrides[o.EmployeeID] = o
	}

	resp := payroll.SaveMonthResponse{Month: req.Month, Year: req.Year}
	now := time.Now()

	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, r := range results {
			row := payroll.PayRoll{
				ID:          uuid.NewString(),
				EmployeeID:  r.EmployeeID,
				Month:       req.Month,
				Year:        req.Year,
				WorkingDays: req.WorkingDays,
				Holidays:    req.Holidays,
				Result:      r,
				DateSaved:   now,
			}

			row.ActualPaidAmount = salarysvc.PaidAmount(r.NetSalary)
			if o, ok := overrides[r.EmployeeID]; ok {
				if o.PaidSalary != nil {
					row.ActualPaidAmount = *o.PaidSalary
				}
				if o.IsPaid != nil {
					row.IsPaid = *o.IsPaid
				}
			}

			inserted, err := s.payrollRepo.Upsert(txCtx, row)
			if err != nil {
				return fmt.Errorf("failed to save payroll for employee %s: %w", r.EmployeeCode, err)
			}
			if inserted {
				resp.Inserted++
			} else {
				resp.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return payroll.SaveMonthResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) SavedExists(ctx context.Context, month, year int) (payroll.ExistsResponse, error) {
	info, err := s.payrollRepo.Exists(ctx, month, year)
	if err != nil {
		return payroll.ExistsResponse{}, fmt.Errorf("failed to check saved payroll: %w", err)
	}

	resp := payroll.ExistsResponse{
		Exists:      info.Exists,
		RecordCount: info.RecordCount,
	}
	if info.DateSaved != nil {
		v := info.DateSaved.Format(time.RFC3339)
		resp.DateSaved = &v
	}
	return resp, nil
}

func (s *PayrollServiceImpl) GetSaved(ctx context.Context, month, year int, filter payroll.Filter) (payroll.SavedMonthResponse, error) {
	rows, err := s.payrollRepo.ListMonth(ctx, month, year, filter)
	if err != nil {
		return payroll.SavedMonthResponse{}, fmt.Errorf("failed to list saved payroll: %w", err)
	}
	if len(rows) == 0 {
		if filter.EmployeeID != nil {
			return payroll.SavedMonthResponse{}, payroll.ErrEmployeeNotInPayroll
		}
		return payroll.SavedMonthResponse{}, payroll.ErrNoSavedPayroll
	}

	resp := payroll.SavedMonthResponse{
		Month:       month,
		Year:        year,
		WorkingDays: rows[0].WorkingDays,
		Holidays:    rows[0].Holidays,
	}
	results := make([]salary.Result, 0, len(rows))
	for _, row := range rows {
		resp.Records = append(resp.Records, payroll.MapToResponse(row))
		results = append(results, row.Result)
	}
	resp.Rollup = salary.MapRollupToResponse(salarysvc.Rollup(results))

	return resp, nil
}

func (s *PayrollServiceImpl) UpdatePaid(ctx context.Context, req payroll.UpdatePaidRequest) (payroll.PayRollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayRollResponse{}, err
	}

	row, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	fields := payroll.UpdatePaidFields{
		PaidAmount: salarysvc.PaidAmount(req.PaidAmount),
		IsPaid:     req.IsPaid,
	}
	savedAt, err := s.payrollRepo.UpdatePaid(ctx, row.ID, fields)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to update paid status: %w", err)
	}

	row.ActualPaidAmount = fields.PaidAmount
	row.IsPaid = fields.IsPaid
	row.DateSaved = savedAt
	return payroll.MapToResponse(row), nil
}

func (s *PayrollServiceImpl) DeleteMonth(ctx context.Context, month, year int) (payroll.DeleteMonthResponse, error) {
	rows, err := s.payrollRepo.DeleteMonth(ctx, month, year)
	if err != nil {
		return payroll.DeleteMonthResponse{}, fmt.Errorf("failed to delete payroll month: %w", err)
	}
	return payroll.DeleteMonthResponse{Deleted: rows > 0, Rows: rows}, nil
}

func (s *PayrollServiceImpl) RecalculateOne(ctx context.Context, payrollID string) (payroll.PayRollResponse, error) {
	row, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, row.EmployeeID)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	ids := []string{emp.ID}
	records, err := s.attendanceRepo.GetForMonth(ctx, row.Month, row.Year, ids)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	adjustments, err := s.adjustmentRepo.GetForMonth(ctx, row.Month, row.Year, ids)
	if err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to get adjustments: %w", err)
	}

	req := salary.CalculateRequest{
		Month:       row.Month,
		Year:        row.Year,
		WorkingDays: row.WorkingDays,
		Holidays:    row.Holidays,
	}
	totals := salary.MonthlyTotals{}
	if t, ok := salarysvc.AggregateMonth(records, adjustments)[emp.ID]; ok {
		totals = *t
	}

	row.Result = salarysvc.CalculateEmployee(emp, totals, req)
	row.ActualPaidAmount = salarysvc.PaidAmount(row.Result.NetSalary)
	row.DateSaved = time.Now()

	if _, err := s.payrollRepo.Upsert(ctx, row); err != nil {
		return payroll.PayRollResponse{}, fmt.Errorf("failed to save recalculated payroll: %w", err)
	}

	return payroll.MapToResponse(row), nil
}

// calculateResults live-computes every active employee's month, sorted the
// way the employee repository returns them.
func (s *PayrollServiceImpl) calculateResults(ctx context.Context, req salary.CalculateRequest) ([]salary.Result, error) {
	employees, err := s.employeeRepo.GetActiveWithShift(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, salary.ErrNoEmployees
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	records, err := s.attendanceRepo.GetForMonth(ctx, req.Month, req.Year, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	adjustments, err := s.adjustmentRepo.GetForMonth(ctx, req.Month, req.Year, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustments: %w", err)
	}

	totals := salarysvc.AggregateMonth(records, adjustments)

	results := make([]salary.Result, 0, len(employees))
	for _, emp := range employees {
		t := salary.MonthlyTotals{}
		if et, ok := totals[emp.ID]; ok {
			t = *et
		}
		results = append(results, salarysvc.CalculateEmployee(emp, t, req))
	}
	return results, nil
}
