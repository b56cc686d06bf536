package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationType decides how the base portion of a salary is priced.
type CalculationType string

const (
	CalculationHourly CalculationType = "hourly"
	CalculationDaily  CalculationType = "daily"
)

var CalculationTypeValues = []string{
	string(CalculationHourly),
	string(CalculationDaily),
}

// Shift is the static per-shift policy consumed by the timesheet and salary
// calculators. StartTime/EndTime carry only the time-of-day component; a shift
// whose end falls before its start crosses midnight.
type Shift struct {
	ID                       string
	Name                     string
	StartTime                time.Time
	EndTime                  time.Time
	GraceMinutesIn           int
	GraceMinutesOut          int
	StandardHours            decimal.Decimal
	IsFlexible               bool
	CalculationType          CalculationType
	OvertimeMultiplier       decimal.Decimal
	LateMultiplier           decimal.Decimal
	EarlyDepartureMultiplier decimal.Decimal
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Defaults applied when a shift row carries no explicit multipliers.
var (
	DefaultOvertimeMultiplier       = decimal.NewFromFloat(1.5)
	DefaultLateMultiplier           = decimal.NewFromInt(1)
	DefaultEarlyDepartureMultiplier = decimal.NewFromInt(1)
)
