package employee

import (
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                     string
	EmployeeCode           string
	FullName               string
	DepartmentID           *string
	ShiftID                *string
	MonthlySalary          decimal.Decimal
	OvertimeRateMultiplier decimal.Decimal
	LateRateMultiplier     decimal.Decimal
	Status                 EmploymentStatus
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              *time.Time

	// Joined fields
	DepartmentName *string
	Shift          *shift.Shift
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
