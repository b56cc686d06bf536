package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (Record, error)
	GetForMonth(ctx context.Context, month, year int, employeeIDs []string) ([]Record, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Record, error)
	// UpdateDerived rewrites only the derived minute columns of an existing row.
	UpdateDerived(ctx context.Context, rec Record) error
}
