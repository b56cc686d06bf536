package payroll

import (
	"context"
	"time"
)

// PayrollRepository persists salary snapshots. Save-all loops Upsert inside a
// single transaction supplied through the context; the repository itself does
// not open transactions.
type PayrollRepository interface {
	Exists(ctx context.Context, month, year int) (ExistsInfo, error)
	GetByID(ctx context.Context, id string) (PayRoll, error)
	// Upsert inserts a new row or overwrites the computed fields of the row
	// matching (employee, month, year). Reports whether a new row was created.
	Upsert(ctx context.Context, p PayRoll) (inserted bool, err error)
	ListMonth(ctx context.Context, month, year int, filter Filter) ([]PayRoll, error)
	// UpdatePaid writes the paid fields and returns the save timestamp the
	// database recorded for the touch.
	UpdatePaid(ctx context.Context, id string, req UpdatePaidFields) (time.Time, error)
	// DeleteMonth removes every row for the month and reports how many went.
	DeleteMonth(ctx context.Context, month, year int) (int64, error)
}
