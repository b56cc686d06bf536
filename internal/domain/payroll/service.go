package payroll

import (
	"context"

	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
)

// PayrollService defines the payroll lifecycle: live calculation, snapshot
// save, reads against the snapshot, and single-row repairs.
type PayrollService interface {
	// CalculateMonth live-computes every active employee's salary for the
	// period. Nothing is persisted.
	CalculateMonth(ctx context.Context, req salary.CalculateRequest) (salary.CalculateMonthResponse, error)

	// SaveMonth calculates the period and persists one snapshot row per
	// employee as a single unit of work, inserting or updating in place.
	SaveMonth(ctx context.Context, req SaveMonthRequest) (SaveMonthResponse, error)

	// SavedExists is the cheap probe callers use before overwriting a month.
	SavedExists(ctx context.Context, month, year int) (ExistsResponse, error)

	// GetSaved reads the persisted snapshot for a month, optionally filtered
	// by shift name or employee.
	GetSaved(ctx context.Context, month, year int, filter Filter) (SavedMonthResponse, error)

	// UpdatePaid sets the paid amount (ceiling-to-5 applied) and paid flag on
	// one row.
	UpdatePaid(ctx context.Context, req UpdatePaidRequest) (PayRollResponse, error)

	// DeleteMonth removes every snapshot row for the period.
	DeleteMonth(ctx context.Context, month, year int) (DeleteMonthResponse, error)

	// RecalculateOne re-runs the full calculation for one saved row using its
	// stored period configuration against current attendance and adjustment
	// data, leaving every other row untouched.
	RecalculateOne(ctx context.Context, payrollID string) (PayRollResponse, error)
}
