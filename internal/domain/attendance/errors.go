package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee and date")
	ErrMissingClockTimes   = errors.New("check-in and check-out are required unless the record is marked absent")
	ErrRangeTooLarge       = errors.New("recalculation range exceeds the maximum of 93 days")
)
