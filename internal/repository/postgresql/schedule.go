package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db     *database.DB
	logger *slog.Logger
}

func NewAssignmentRepository(db *database.DB, logger *slog.Logger) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db, logger: logger}
}

// GetAssignments implements schedule.AssignmentRepository.
//
// The days column is a sparse JSON object keyed by day of month. A row
// that fails to decode is skipped and logged; one bad record must not
// blank a whole month's aggregation.
func (a *assignmentRepositoryImpl) GetAssignments(ctx context.Context, monthKey string) ([]schedule.MonthlyAssignment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, days
		FROM shift_assignments
		WHERE month_key = $1
	`

	rows, err := q.Query(ctx, query, monthKey)
	if err != nil {
		return nil, fmt.Errorf("query assignments %s: %w", monthKey, err)
	}
	defer rows.Close()

	var assignments []schedule.MonthlyAssignment
	for rows.Next() {
		var (
			employeeID string
			raw        []byte
		)
		if err := rows.Scan(&employeeID, &raw); err != nil {
			return nil, fmt.Errorf("scan assignment row: %w", errors.Join(schedule.ErrMalformedAssignment, err))
		}

		days := make(map[string]string)
		if err := json.Unmarshal(raw, &days); err != nil {
			a.logger.Warn("skipping malformed assignment row",
				slog.String("employee_id", employeeID),
				slog.String("month_key", monthKey),
				slog.Any("error", err))
			continue
		}

		assignments = append(assignments, schedule.MonthlyAssignment{
			EmployeeID: employeeID,
			MonthKey:   monthKey,
			Days:       days,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}
