package attendance

import (
	"context"
	"time"
)

// Pool describes a population whose presence is computed independently:
// a filter (roles or explicit IDs; both empty means the whole roster)
// plus a bounded lookback window.
type Pool struct {
	Name        string
	Roles       []string
	EmployeeIDs []string
	Lookback    time.Duration
}

// PresenceService reconstructs sessions and answers "who is inside now"
// for one pool. One algorithm, parameterized by population and window.
type PresenceService interface {
	Snapshot(ctx context.Context, pool Pool) (PresenceSnapshot, error)
}

// AttendanceService serves the punch-log views and ad-hoc
// classification used by the reporting screens.
type AttendanceService interface {
	// LatestCheckIns returns today's latest check-in per employee with
	// its attendance status.
	LatestCheckIns(ctx context.Context) ([]PunchLogEntry, error)

	// LatestCheckOuts returns today's latest check-out per employee
	// with its checkout status.
	LatestCheckOuts(ctx context.Context) ([]PunchLogEntry, error)

	// PunchStatus classifies a single (employee, instant) pair against
	// the employee's resolved shift for that operational day.
	PunchStatus(ctx context.Context, employeeID string, ts time.Time) (PunchStatusResponse, error)

	// RecordPunch appends a raw punch event.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchEvent, error)
}
