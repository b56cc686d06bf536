package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/payroll"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Exists(ctx context.Context, month, year int) (payroll.ExistsInfo, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), MAX(date_saved)
		FROM payrolls
		WHERE month = $1 AND year = $2
	`

	var info payroll.ExistsInfo
	err := q.QueryRow(ctx, query, month, year).Scan(&info.RecordCount, &info.DateSaved)
	if err != nil {
		return payroll.ExistsInfo{}, fmt.Errorf("failed to check payroll existence: %w", err)
	}
	info.Exists = info.RecordCount > 0

	return info, nil
}

const payrollColumns = `
	id, employee_id, month, year, working_days, holidays,
	employee_name, employee_code, department_name, shift_name,
	calculation_type, rate_policy,
	monthly_salary, salary_per_hour, salary_per_day,
	shift_hours_per_day, expected_working_hours,
	present_days, absent_days,
	worked_minutes, worked_hours, overtime_minutes, overtime_hours,
	late_minutes, late_hours, early_departure_minutes, early_departure_hours,
	permission_minutes, permission_hours,
	overtime_multiplier, late_multiplier, early_departure_multiplier,
	overtime_amount, late_deduction, early_departure_deduction,
	net_difference_hours, net_difference_amount,
	total_bonuses, total_deductions, total_advances,
	bonus_items, deduction_items, advance_items,
	worked_hours_salary, gross_salary, total_deductions_amount, net_salary,
	actual_paid_amount, is_paid, date_saved
`

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayRoll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayRoll{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayRoll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) Upsert(ctx context.Context, p payroll.PayRoll) (bool, error) {
	q := GetQuerier(ctx, r.db)

	bonusItems, deductionItems, advanceItems, err := marshalItems(p.Result)
	if err != nil {
		return false, err
	}

	var existingID string
	err = q.QueryRow(ctx,
		`SELECT id FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3`,
		p.EmployeeID, p.Month, p.Year,
	).Scan(&existingID)

	switch {
	case err == pgx.ErrNoRows:
		insert := `
			INSERT INTO payrolls (` + payrollColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
					$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
					$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
					$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
					$41, $42, $43, $44, $45, $46, $47, $48, $49, $50)
		`
		_, err := q.Exec(ctx, insert, upsertArgs(p, bonusItems, deductionItems, advanceItems)...)
		if err != nil {
			return false, fmt.Errorf("failed to insert payroll: %w", err)
		}
		return true, nil

	case err != nil:
		return false, fmt.Errorf("failed to probe payroll: %w", err)

	default:
		update := `
			UPDATE payrolls SET
				working_days = $2, holidays = $3,
				employee_name = $4, employee_code = $5, department_name = $6,
				shift_name = $7, calculation_type = $8, rate_policy = $9,
				monthly_salary = $10, salary_per_hour = $11, salary_per_day = $12,
				shift_hours_per_day = $13, expected_working_hours = $14,
				present_days = $15, absent_days = $16,
				worked_minutes = $17, worked_hours = $18,
				overtime_minutes = $19, overtime_hours = $20,
				late_minutes = $21, late_hours = $22,
				early_departure_minutes = $23, early_departure_hours = $24,
				permission_minutes = $25, permission_hours = $26,
				overtime_multiplier = $27, late_multiplier = $28,
				early_departure_multiplier = $29,
				overtime_amount = $30, late_deduction = $31,
				early_departure_deduction = $32,
				net_difference_hours = $33, net_difference_amount = $34,
				total_bonuses = $35, total_deductions = $36, total_advances = $37,
				bonus_items = $38, deduction_items = $39, advance_items = $40,
				worked_hours_salary = $41, gross_salary = $42,
				total_deductions_amount = $43, net_salary = $44,
				actual_paid_amount = $45, is_paid = $46, date_saved = $47
			WHERE id = $1
		`
		res := p.Result
		_, err := q.Exec(ctx, update,
			existingID, p.WorkingDays, p.Holidays,
			res.EmployeeName, res.EmployeeCode, res.DepartmentName,
			res.ShiftName, res.CalculationType, res.Policy,
			res.MonthlySalary, res.SalaryPerHour, res.SalaryPerDay,
			res.ShiftHoursPerDay, res.ExpectedWorkingHours,
			res.PresentDays, res.AbsentDays,
			res.WorkedMinutes, res.WorkedHours,
			res.OvertimeMinutes, res.OvertimeHours,
			res.LateMinutes, res.LateHours,
			res.EarlyDepartureMinutes, res.EarlyDepartureHours,
			res.PermissionMinutes, res.PermissionHours,
			res.OvertimeMultiplier, res.LateMultiplier,
			res.EarlyDepartureMultiplier,
			res.OvertimeAmount, res.LateDeduction,
			res.EarlyDepartureDeduction,
			res.NetDifferenceHours, res.NetDifferenceAmount,
			res.TotalBonuses, res.TotalDeductions, res.TotalAdvances,
			bonusItems, deductionItems, advanceItems,
			res.WorkedHoursSalary, res.GrossSalary,
			res.TotalDeductionsAmount, res.NetSalary,
			p.ActualPaidAmount, p.IsPaid, p.DateSaved,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update payroll: %w", err)
		}
		return false, nil
	}
}

func (r *payrollRepository) ListMonth(ctx context.Context, month, year int, filter payroll.Filter) ([]payroll.PayRoll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE month = $1 AND year = $2`
	args := []any{month, year}

	if filter.ShiftName != nil {
		args = append(args, *filter.ShiftName)
		query += fmt.Sprintf(" AND shift_name = $%d", len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	query += " ORDER BY employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll month: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.PayRoll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return payrolls, nil
}

func (r *payrollRepository) UpdatePaid(ctx context.Context, id string, req payroll.UpdatePaidFields) (time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET actual_paid_amount = $2, is_paid = $3, date_saved = NOW()
		WHERE id = $1
		RETURNING date_saved
	`

	var savedAt time.Time
	err := q.QueryRow(ctx, query, id, req.PaidAmount, req.IsPaid).Scan(&savedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return time.Time{}, payroll.ErrPayrollNotFound
		}
		return time.Time{}, fmt.Errorf("failed to update paid status: %w", err)
	}

	return savedAt, nil
}

func (r *payrollRepository) DeleteMonth(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE month = $1 AND year = $2`, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payroll month: %w", err)
	}

	return tag.RowsAffected(), nil
}

func upsertArgs(p payroll.PayRoll, bonusItems, deductionItems, advanceItems []byte) []any {
	res := p.Result
	return []any{
		p.ID, p.EmployeeID, p.Month, p.Year, p.WorkingDays, p.Holidays,
		res.EmployeeName, res.EmployeeCode, res.DepartmentName, res.ShiftName,
		res.CalculationType, res.Policy,
		res.MonthlySalary, res.SalaryPerHour, res.SalaryPerDay,
		res.ShiftHoursPerDay, res.ExpectedWorkingHours,
		res.PresentDays, res.AbsentDays,
		res.WorkedMinutes, res.WorkedHours, res.OvertimeMinutes, res.OvertimeHours,
		res.LateMinutes, res.LateHours, res.EarlyDepartureMinutes, res.EarlyDepartureHours,
		res.PermissionMinutes, res.PermissionHours,
		res.OvertimeMultiplier, res.LateMultiplier, res.EarlyDepartureMultiplier,
		res.OvertimeAmount, res.LateDeduction, res.EarlyDepartureDeduction,
		res.NetDifferenceHours, res.NetDifferenceAmount,
		res.TotalBonuses, res.TotalDeductions, res.TotalAdvances,
		bonusItems, deductionItems, advanceItems,
		res.WorkedHoursSalary, res.GrossSalary, res.TotalDeductionsAmount, res.NetSalary,
		p.ActualPaidAmount, p.IsPaid, p.DateSaved,
	}
}

func marshalItems(res salary.Result) (bonus, deduction, advance []byte, err error) {
	if bonus, err = json.Marshal(res.BonusItems); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal bonus items: %w", err)
	}
	if deduction, err = json.Marshal(res.DeductionItems); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal deduction items: %w", err)
	}
	if advance, err = json.Marshal(res.AdvanceItems); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal advance items: %w", err)
	}
	return bonus, deduction, advance, nil
}

func scanPayroll(row pgx.Row) (payroll.PayRoll, error) {
	var (
		p payroll.PayRoll

		bonusItems     []byte
		deductionItems []byte
		advanceItems   []byte
	)
	res := &p.Result

	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.WorkingDays, &p.Holidays,
		&res.EmployeeName, &res.EmployeeCode, &res.DepartmentName, &res.ShiftName,
		&res.CalculationType, &res.Policy,
		&res.MonthlySalary, &res.SalaryPerHour, &res.SalaryPerDay,
		&res.ShiftHoursPerDay, &res.ExpectedWorkingHours,
		&res.PresentDays, &res.AbsentDays,
		&res.WorkedMinutes, &res.WorkedHours, &res.OvertimeMinutes, &res.OvertimeHours,
		&res.LateMinutes, &res.LateHours, &res.EarlyDepartureMinutes, &res.EarlyDepartureHours,
		&res.PermissionMinutes, &res.PermissionHours,
		&res.OvertimeMultiplier, &res.LateMultiplier, &res.EarlyDepartureMultiplier,
		&res.OvertimeAmount, &res.LateDeduction, &res.EarlyDepartureDeduction,
		&res.NetDifferenceHours, &res.NetDifferenceAmount,
		&res.TotalBonuses, &res.TotalDeductions, &res.TotalAdvances,
		&bonusItems, &deductionItems, &advanceItems,
		&res.WorkedHoursSalary, &res.GrossSalary, &res.TotalDeductionsAmount, &res.NetSalary,
		&p.ActualPaidAmount, &p.IsPaid, &p.DateSaved,
	)
	if err != nil {
		return payroll.PayRoll{}, err
	}
	res.EmployeeID = p.EmployeeID

	if err := json.Unmarshal(bonusItems, &res.BonusItems); err != nil {
		return payroll.PayRoll{}, fmt.Errorf("failed to unmarshal bonus items: %w", err)
	}
	if err := json.Unmarshal(deductionItems, &res.DeductionItems); err != nil {
		return payroll.PayRoll{}, fmt.Errorf("failed to unmarshal deduction items: %w", err)
	}
	if err := json.Unmarshal(advanceItems, &res.AdvanceItems); err != nil {
		return payroll.PayRoll{}, fmt.Errorf("failed to unmarshal advance items: %w", err)
	}

	return p, nil
}
