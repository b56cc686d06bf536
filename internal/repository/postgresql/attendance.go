package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, work_date, is_absent, check_in, check_out,
			permission_minutes, worked_minutes, late_minutes, overtime_minutes,
			early_departure_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.WorkDate, rec.IsAbsent, rec.CheckIn, rec.CheckOut,
		rec.PermissionMinutes, rec.WorkedMinutes, rec.LateMinutes, rec.OvertimeMinutes,
		rec.EarlyDepartureMinutes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.Record{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, is_absent, check_in, check_out,
			   permission_minutes, worked_minutes, late_minutes, overtime_minutes,
			   early_departure_minutes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, workDate).Scan(
		&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.IsAbsent, &rec.CheckIn, &rec.CheckOut,
		&rec.PermissionMinutes, &rec.WorkedMinutes, &rec.LateMinutes, &rec.OvertimeMinutes,
		&rec.EarlyDepartureMinutes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) GetForMonth(ctx context.Context, month, year int, employeeIDs []string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, is_absent, check_in, check_out,
			   permission_minutes, worked_minutes, late_minutes, overtime_minutes,
			   early_departure_minutes, created_at, updated_at
		FROM attendance_records
		WHERE EXTRACT(MONTH FROM work_date) = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
		  AND employee_id = ANY($3)
		ORDER BY employee_id, work_date
	`

	rows, err := q.Query(ctx, query, month, year, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for month: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows, false)
}

func (r *attendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.work_date, a.is_absent, a.check_in, a.check_out,
			   a.permission_minutes, a.worked_minutes, a.late_minutes, a.overtime_minutes,
			   a.early_departure_minutes, a.created_at, a.updated_at,
			   e.employee_code, e.full_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.work_date BETWEEN $1 AND $2
		ORDER BY a.work_date, e.employee_code
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows, true)
}

func (r *attendanceRepository) UpdateDerived(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET worked_minutes = $2, late_minutes = $3, overtime_minutes = $4,
			early_departure_minutes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.WorkedMinutes, rec.LateMinutes, rec.OvertimeMinutes,
		rec.EarlyDepartureMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update derived minutes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func collectRecords(rows pgx.Rows, withEmployee bool) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		dest := []any{
			&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.IsAbsent, &rec.CheckIn, &rec.CheckOut,
			&rec.PermissionMinutes, &rec.WorkedMinutes, &rec.LateMinutes, &rec.OvertimeMinutes,
			&rec.EarlyDepartureMinutes, &rec.CreatedAt, &rec.UpdatedAt,
		}
		if withEmployee {
			dest = append(dest, &rec.EmployeeCode, &rec.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
