package timesheet

import (
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// DayTimes is the derived outcome of one attendance day. A zero field means
// the day produced none of that kind of time.
type DayTimes struct {
	WorkedMinutes         int
	LateMinutes           int
	OvertimeMinutes       int
	EarlyDepartureMinutes int
}

// ComputeDayTimes turns one attendance record and its shift policy into
// worked, late, overtime and early-departure minutes. Pure function: same
// inputs always give the same outputs.
//
// Absent records produce all zeros. A non-absent record missing either clock
// time is rejected whole; nothing is partially computed.
func ComputeDayTimes(rec attendance.Record, sh shift.Shift) (DayTimes, error) {
	if rec.IsAbsent {
		return DayTimes{}, nil
	}
	if rec.CheckIn == nil || rec.CheckOut == nil {
		return DayTimes{}, attendance.ErrMissingClockTimes
	}

	if sh.IsFlexible {
		return computeFlexible(rec, sh), nil
	}
	return computeFixed(rec, sh), nil
}

func computeFixed(rec attendance.Record, sh shift.Shift) DayTimes {
	in := minutesOfDay(*rec.CheckIn)
	out := minutesOfDay(*rec.CheckOut)
	start := minutesOfDay(sh.StartTime)
	end := minutesOfDay(sh.EndTime)

	// Late time is measured from the shift start, not the grace boundary,
	// but only counts once the grace window is exceeded.
	late := 0
	if d := in - start; d > 0 && d > sh.GraceMinutesIn {
		late = d
	}

	// Arriving before the shift start is rewarded as overtime.
	earlyCheckIn := max(0, start-in)
	overtimeAfterShift := max(0, out-end)

	totalRaw := out - in
	if totalRaw < 0 {
		// Shift crossed midnight.
		totalRaw += minutesPerDay
	}

	standardMinutes := standardShiftMinutes(sh)
	worked := min(totalRaw-overtimeAfterShift-earlyCheckIn, standardMinutes)
	worked = max(0, worked-rec.PermissionMinutes)

	// Early departure is a separate deduction basis; it never feeds back
	// into overtime or worked minutes.
	earlyDeparture := 0
	if d := end - out; d > 0 && d > sh.GraceMinutesOut {
		earlyDeparture = d
	}

	return DayTimes{
		WorkedMinutes:         worked,
		LateMinutes:           late,
		OvertimeMinutes:       overtimeAfterShift + earlyCheckIn,
		EarlyDepartureMinutes: earlyDeparture,
	}
}

// computeFlexible ignores shift start/end entirely: late and overtime come
// from total hours worked against the standard hours.
func computeFlexible(rec attendance.Record, sh shift.Shift) DayTimes {
	in := minutesOfDay(*rec.CheckIn)
	out := minutesOfDay(*rec.CheckOut)

	totalRaw := out - in
	if totalRaw < 0 {
		totalRaw += minutesPerDay
	}

	actual := max(0, totalRaw-rec.PermissionMinutes)
	standardMinutes := standardShiftMinutes(sh)

	dt := DayTimes{WorkedMinutes: actual}
	switch {
	case actual > standardMinutes:
		dt.OvertimeMinutes = actual - standardMinutes
	case actual < standardMinutes:
		dt.LateMinutes = standardMinutes - actual
	}
	return dt
}

func standardShiftMinutes(sh shift.Shift) int {
	return int(sh.StandardHours.Mul(decimal.NewFromInt(60)).Round(0).IntPart())
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
