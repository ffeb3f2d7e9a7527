package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/dashboard"
)

// DashboardJobs periodically recomputes the shift dashboard so the
// headline numbers stay warm in the logs and stale data problems show
// up before anyone opens a screen.
type DashboardJobs struct {
	dashboardSvc dashboard.DashboardService
	logger       *slog.Logger
	interval     time.Duration
}

func NewDashboardJobs(dashboardSvc dashboard.DashboardService, logger *slog.Logger, interval time.Duration) *DashboardJobs {
	return &DashboardJobs{
		dashboardSvc: dashboardSvc,
		logger:       logger,
		interval:     interval,
	}
}

func (j *DashboardJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_dashboard", j.interval, j.RefreshDashboard)
}

func (j *DashboardJobs) RefreshDashboard(ctx context.Context) error {
	resp, err := j.dashboardSvc.GetDashboard(ctx)
	if err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	j.logger.Info("Dashboard refreshed",
		slog.String("shift", resp.CurrentShift),
		slog.String("operational_date", resp.OperationalDate),
		slog.Int("present", resp.Present.Total),
		slog.Int("absent", resp.Absent.Total),
		slog.Int("rest_day", resp.RestDay.Total),
		slog.String("late_coming", resp.LateComing.Percentage),
	)
	return nil
}
