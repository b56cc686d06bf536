package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes the three financial adjustment variants. Advances carry
// no note; bonuses and deductions may.
type Kind string

const (
	KindAdvance   Kind = "advance"
	KindBonus     Kind = "bonus"
	KindDeduction Kind = "deduction"
)

type Adjustment struct {
	ID         string
	EmployeeID string
	Kind       Kind
	Date       time.Time
	Amount     decimal.Decimal
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
