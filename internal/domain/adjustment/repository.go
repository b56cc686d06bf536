package adjustment

import "context"

// AdjustmentRepository is the read-only view the payroll core has of the
// advance/bonus/deduction CRUD collaborators.
type AdjustmentRepository interface {
	GetForMonth(ctx context.Context, month, year int, employeeIDs []string) ([]Adjustment, error)
}
