package payroll

import (
	"time"

	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// PayRoll is one persisted salary snapshot, keyed by (employee, month, year).
// Result is a denormalized copy taken at save time: employee name, code,
// department and shift name are captured in the row, never joined later. Rows
// exist only after an explicit save; until then salary figures are always
// live-computed.
type PayRoll struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	WorkingDays int
	Holidays    int

	Result salary.Result

	ActualPaidAmount decimal.Decimal
	IsPaid           bool
	DateSaved        time.Time
}

// ExistsInfo is the cheap probe result used before allowing an overwrite.
type ExistsInfo struct {
	Exists      bool
	RecordCount int
	DateSaved   *time.Time
}

// Filter narrows a saved-month read.
type Filter struct {
	ShiftName  *string
	EmployeeID *string
}
