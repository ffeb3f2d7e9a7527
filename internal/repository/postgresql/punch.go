package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListCheckIns implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListCheckIns(ctx context.Context, start, end time.Time, employeeIDs []string) ([]attendance.PunchEvent, error) {
	return p.listPunches(ctx, attendance.PunchCheckIn, start, end, employeeIDs)
}

// ListCheckOuts implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListCheckOuts(ctx context.Context, start, end time.Time, employeeIDs []string) ([]attendance.PunchEvent, error) {
	return p.listPunches(ctx, attendance.PunchCheckOut, start, end, employeeIDs)
}

func (p *punchRepositoryImpl) listPunches(ctx context.Context, kind attendance.PunchKind, start, end time.Time, employeeIDs []string) ([]attendance.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, employee_name, ts
		FROM punches
		WHERE event_type = $1 AND ts >= $2 AND ts < $3
	`
	args := []interface{}{kind, start, end}
	if len(employeeIDs) > 0 {
		query += ` AND employee_id = ANY($4)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY ts ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s punches: %w", kind, err)
	}
	defer rows.Close()

	return scanPunches(rows, kind)
}

// RecordPunch implements attendance.PunchRepository.
//
// Devices retry deliveries, so the duplicate check and the insert run
// in one transaction; a redelivered punch returns the stored row's id.
func (p *punchRepositoryImpl) RecordPunch(ctx context.Context, event attendance.PunchEvent) (attendance.PunchEvent, error) {
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, p.db)

		dupQuery := `
			SELECT id FROM punches
			WHERE employee_id = $1 AND event_type = $2 AND ts = $3
		`
		var existing string
		err := q.QueryRow(txCtx, dupQuery, event.EmployeeID, event.Kind, event.Timestamp).Scan(&existing)
		if err == nil {
			event.ID = existing
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check duplicate punch: %w", err)
		}

		insertQuery := `
			INSERT INTO punches (id, employee_id, employee_name, event_type, ts)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		var id string
		if err := q.QueryRow(txCtx, insertQuery, event.ID, event.EmployeeID, event.EmployeeName, event.Kind, event.Timestamp).Scan(&id); err != nil {
			return fmt.Errorf("insert punch: %w", err)
		}
		event.ID = id
		return nil
	})
	if err != nil {
		return attendance.PunchEvent{}, fmt.Errorf("%w: %v", attendance.ErrPunchNotRecorded, err)
	}
	return event, nil
}

func scanPunches(rows pgx.Rows, kind attendance.PunchKind) ([]attendance.PunchEvent, error) {
	var events []attendance.PunchEvent
	for rows.Next() {
		var ev attendance.PunchEvent
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.EmployeeName, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan punch: %w", err)
		}
		ev.Kind = kind
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
