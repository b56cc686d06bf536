package postgresql

import (
	"context"
	"fmt"

	"github.com/hrplus/payroll-backend-go/internal/domain/adjustment"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) GetForMonth(ctx context.Context, month, year int, employeeIDs []string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, date, amount, note, created_at, updated_at
		FROM financial_adjustments
		WHERE EXTRACT(MONTH FROM date) = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND employee_id = ANY($3)
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, month, year, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustments for month: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var a adjustment.Adjustment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Kind, &a.Date, &a.Amount, &a.Note,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustments: %w", err)
	}

	return adjustments, nil
}
