package dashboard

import "context"

// DashboardService aggregates roster, assignments, punches, and pool
// presence into the shift dashboard. Reads fan out in parallel; the
// join is synchronous and allocates per call only.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
