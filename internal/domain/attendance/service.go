package attendance

import (
	"context"
)

// AttendanceService defines the attendance-entry and recalculation operations
// the payroll core exposes.
type AttendanceService interface {
	// RecordDay validates and stores one day's attendance, deriving worked,
	// late, overtime and early-departure minutes from the employee's shift.
	RecordDay(ctx context.Context, req RecordDayRequest) (RecordResponse, error)

	// RecalculateRange re-derives day times for every attendance row in the
	// window (at most 93 days), collecting per-row failures instead of
	// aborting the batch.
	RecalculateRange(ctx context.Context, req RecalculateRangeRequest) (RecalculateRangeResponse, error)
}
