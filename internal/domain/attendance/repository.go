package attendance

import (
	"context"
	"time"
)

// PunchRepository reads the append-only punch streams. Every query is a
// point-in-time read bounded by an explicit window; there is no
// open-ended polling call.
type PunchRepository interface {
	// ListCheckIns returns check-in events in [start, end), optionally
	// restricted to a set of employees (nil/empty = all), ordered by
	// timestamp ascending.
	ListCheckIns(ctx context.Context, start, end time.Time, employeeIDs []string) ([]PunchEvent, error)

	// ListCheckOuts is the check-out equivalent of ListCheckIns.
	ListCheckOuts(ctx context.Context, start, end time.Time, employeeIDs []string) ([]PunchEvent, error)

	// RecordPunch appends one punch event.
	RecordPunch(ctx context.Context, event PunchEvent) (PunchEvent, error)
}
