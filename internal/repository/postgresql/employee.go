package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_code, e.full_name, e.department_id, e.shift_id,
		   e.monthly_salary, e.overtime_rate_multiplier, e.late_rate_multiplier,
		   e.status, e.created_at, e.updated_at, e.deleted_at,
		   d.name AS department_name,
		   s.id, s.name, s.start_time, s.end_time,
		   s.grace_minutes_in, s.grace_minutes_out, s.standard_hours,
		   s.is_flexible, s.calculation_type,
		   s.overtime_multiplier, s.late_multiplier, s.early_departure_multiplier,
		   s.created_at, s.updated_at
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN shifts s ON s.id = e.shift_id
`

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetActiveWithShift(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.status = $1 AND e.deleted_at IS NULL
	ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp employee.Employee
		sh  shift.Shift

		shiftID              *string
		shiftName            *string
		shiftStart, shiftEnd *time.Time
		graceIn, graceOut    *int
		standardHours        *decimal.Decimal
		isFlexible           *bool
		calcType             *string
		otMult, lateMult     *decimal.Decimal
		earlyDepMult         *decimal.Decimal
		shiftCreated         *time.Time
		shiftUpdated         *time.Time
	)

	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.DepartmentID, &emp.ShiftID,
		&emp.MonthlySalary, &emp.OvertimeRateMultiplier, &emp.LateRateMultiplier,
		&emp.Status, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.DepartmentName,
		&shiftID, &shiftName, &shiftStart, &shiftEnd,
		&graceIn, &graceOut, &standardHours,
		&isFlexible, &calcType,
		&otMult, &lateMult, &earlyDepMult,
		&shiftCreated, &shiftUpdated,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if shiftID != nil {
		sh.ID = *shiftID
		sh.Name = *shiftName
		sh.StartTime = *shiftStart
		sh.EndTime = *shiftEnd
		sh.GraceMinutesIn = *graceIn
		sh.GraceMinutesOut = *graceOut
		sh.StandardHours = *standardHours
		sh.IsFlexible = *isFlexible
		sh.CalculationType = shift.CalculationType(*calcType)
		sh.OvertimeMultiplier = *otMult
		sh.LateMultiplier = *lateMult
		sh.EarlyDepartureMultiplier = *earlyDepMult
		sh.CreatedAt = *shiftCreated
		sh.UpdatedAt = *shiftUpdated
		emp.Shift = &sh
	}

	return emp, nil
}
