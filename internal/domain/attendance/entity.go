package attendance

import (
	"time"
)

// Record is one day's attendance for one employee. CheckIn/CheckOut carry only
// the time-of-day component and are both nil exactly when IsAbsent is true.
// The derived minute fields are nil when the day produced none of that kind of
// time; a present pointer always means a value greater than zero.
type Record struct {
	ID                    string
	EmployeeID            string
	WorkDate              time.Time
	IsAbsent              bool
	CheckIn               *time.Time
	CheckOut              *time.Time
	PermissionMinutes     int
	WorkedMinutes         int
	LateMinutes           *int
	OvertimeMinutes       *int
	EarlyDepartureMinutes *int
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}
