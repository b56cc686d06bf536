package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/employee"
)

const maxRecalculateRangeDays = 93

type TimesheetService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewTimesheetService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *TimesheetService {
	return &TimesheetService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *TimesheetService) RecordDay(ctx context.Context, req attendance.RecordDayRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Shift == nil {
		return attendance.RecordResponse{}, employee.ErrNoShiftAssigned
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	_, err = s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, workDate)
	if err == nil {
		return attendance.RecordResponse{}, attendance.ErrDuplicateAttendance
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	rec := attendance.Record{
		ID:                uuid.NewString(),
		EmployeeID:        req.EmployeeID,
		WorkDate:          workDate,
		IsAbsent:          req.IsAbsent,
		PermissionMinutes: req.PermissionMinutes,
	}
	if !req.IsAbsent {
		in, err := parseClock(*req.CheckIn)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		out, err := parseClock(*req.CheckOut)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.CheckIn = &in
		rec.CheckOut = &out
	}

	times, err := ComputeDayTimes(rec, *emp.Shift)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	applyDayTimes(&rec, times)

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.MapToResponse(created), nil
}

func (s *TimesheetService) RecalculateRange(ctx context.Context, req attendance.RecalculateRangeRequest) (attendance.RecalculateRangeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecalculateRangeResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	if to.Sub(from) > maxRecalculateRangeDays*24*time.Hour {
		return attendance.RecalculateRangeResponse{}, attendance.ErrRangeTooLarge
	}

	records, err := s.attendanceRepo.ListRange(ctx, from, to)
	if err != nil {
		return attendance.RecalculateRangeResponse{}, fmt.Errorf("failed to list attendance range: %w", err)
	}

	resp := attendance.RecalculateRangeResponse{Processed: len(records)}
	employees := make(map[string]employee.Employee)

	for _, rec := range records {
		emp, ok := employees[rec.EmployeeID]
		if !ok {
			emp, err = s.employeeRepo.GetByID(ctx, rec.EmployeeID)
			if err != nil {
				resp.Errors = append(resp.Errors, rowError(rec, err))
				continue
			}
			employees[rec.EmployeeID] = emp
		}
		if emp.Shift == nil {
			resp.Errors = append(resp.Errors, rowError(rec, employee.ErrNoShiftAssigned))
			continue
		}

		times, err := ComputeDayTimes(rec, *emp.Shift)
		if err != nil {
			resp.Errors = append(resp.Errors, rowError(rec, err))
			continue
		}

		updated := rec
		applyDayTimes(&updated, times)
		if sameDerived(rec, updated) {
			resp.Skipped++
			continue
		}

		if err := s.attendanceRepo.UpdateDerived(ctx, updated); err != nil {
			resp.Errors = append(resp.Errors, rowError(rec, err))
			continue
		}
		resp.Updated++
	}

	slog.Info("attendance range recalculated",
		"from", req.From,
		"to", req.To,
		"processed", resp.Processed,
		"updated", resp.Updated,
		"skipped", resp.Skipped,
		"failed", len(resp.Errors),
	)

	return resp, nil
}

func applyDayTimes(rec *attendance.Record, times DayTimes) {
	rec.WorkedMinutes = times.WorkedMinutes
	rec.LateMinutes = minutesPtr(times.LateMinutes)
	rec.OvertimeMinutes = minutesPtr(times.OvertimeMinutes)
	rec.EarlyDepartureMinutes = minutesPtr(times.EarlyDepartureMinutes)
}

func sameDerived(a, b attendance.Record) bool {
	return a.WorkedMinutes == b.WorkedMinutes &&
		equalIntPtr(a.LateMinutes, b.LateMinutes) &&
		equalIntPtr(a.OvertimeMinutes, b.OvertimeMinutes) &&
		equalIntPtr(a.EarlyDepartureMinutes, b.EarlyDepartureMinutes)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func minutesPtr(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func rowError(rec attendance.Record, err error) string {
	code := rec.EmployeeID
	if rec.EmployeeCode != nil {
		code = *rec.EmployeeCode
	}
	return fmt.Sprintf("%s %s: %s", code, rec.WorkDate.Format("2006-01-02"), err)
}

func parseClock(v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse clock time %q: %w", v, err)
	}
	return t, nil
}
