package employee

import "context"

// EmployeeRepository is the read-only view the payroll core has of the
// employee CRUD collaborator. Every employee comes back with its shift and
// department already joined.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActiveWithShift(ctx context.Context) ([]Employee, error)
}
