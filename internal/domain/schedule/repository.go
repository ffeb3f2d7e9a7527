package schedule

import "context"

// AssignmentRepository reads the monthly shift-assignment tables.
// Implementations must skip (and log) malformed rows rather than fail
// the whole read: one bad record never blanks an aggregation.
type AssignmentRepository interface {
	// GetAssignments returns every employee's assignment map for a
	// month, keyed "YYYY-MM".
	GetAssignments(ctx context.Context, monthKey string) ([]MonthlyAssignment, error)
}
