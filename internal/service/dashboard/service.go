// Package dashboard aggregates roster, shift assignments, punches, and
// pool presence into the shift-wide dashboard report.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/dashboard"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftwatch/attendance-backend-go/internal/service/classifier"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	schedule.AssignmentRepository
	attendance.PunchRepository

	presence attendance.PresenceService
	roles    *roles.Table
	pools    []attendance.Pool
	logger   *slog.Logger

	// Now is the clock; swapped in tests.
	Now func() time.Time
}

func NewDashboardService(
	empRepo employee.EmployeeRepository,
	assignRepo schedule.AssignmentRepository,
	punchRepo attendance.PunchRepository,
	presenceSvc attendance.PresenceService,
	roleTable *roles.Table,
	pools []attendance.Pool,
	logger *slog.Logger,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:   empRepo,
		AssignmentRepository: assignRepo,
		PunchRepository:      punchRepo,
		presence:             presenceSvc,
		roles:                roleTable,
		pools:                pools,
		logger:               logger,
		Now:                  time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService.
//
// All reads fan out in parallel. Pool snapshots degrade to zero on
// failure instead of failing the report; the roster, assignment, and
// punch reads are load-bearing and do propagate errors.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	now := s.Now()
	res := shiftcal.Resolve(now)
	band := shiftcal.BandFor(res.Shift)

	opDayStart := res.OperationalDate.UTC()
	yesterday := res.OperationalDate.AddDate(0, 0, -1)

	var (
		roster      []employee.Employee
		assignments []schedule.MonthlyAssignment
		prevMonth   []schedule.MonthlyAssignment
		checkIns    []attendance.PunchEvent
		poolSnaps   = make([]attendance.PresenceSnapshot, len(s.pools))
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.List(gCtx)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assignments, err = s.GetAssignments(gCtx, res.MonthKey())
		if err != nil {
			return fmt.Errorf("load assignments %s: %w", res.MonthKey(), err)
		}
		return nil
	})
	if yKey := shiftcal.MonthKey(yesterday); yKey != res.MonthKey() {
		g.Go(func() error {
			var err error
			prevMonth, err = s.GetAssignments(gCtx, yKey)
			if err != nil {
				return fmt.Errorf("load assignments %s: %w", yKey, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		checkIns, err = s.ListCheckIns(gCtx, opDayStart, now, nil)
		if err != nil {
			return fmt.Errorf("load today's check-ins: %w", err)
		}
		return nil
	})
	for i, pool := range s.pools {
		i, pool := i, pool
		g.Go(func() error {
			snap, err := s.presence.Snapshot(gCtx, pool)
			if err != nil {
				// Degrade: one failing pool never blanks the report.
				s.logger.Warn("pool snapshot failed, degrading to zero",
					slog.String("pool", pool.Name),
					slog.Any("error", err))
				snap = attendance.PresenceSnapshot{ActiveIDs: []string{}}
			}
			poolSnaps[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}
	assignByID := make(map[string]schedule.MonthlyAssignment, len(assignments))
	for _, a := range assignments {
		assignByID[a.EmployeeID] = a
	}
	prevByID := assignByID
	if len(prevMonth) > 0 {
		prevByID = make(map[string]schedule.MonthlyAssignment, len(prevMonth))
		for _, a := range prevMonth {
			prevByID[a.EmployeeID] = a
		}
	}

	day := res.DayOfMonth()
	scheduled := make(map[string]struct{})
	restDay := make(map[string]struct{})
	for _, emp := range roster {
		a, ok := assignByID[emp.ID]
		if !ok {
			continue
		}
		code := a.CodeFor(day)
		if schedule.MatchesShift(code, res.Shift) {
			scheduled[emp.ID] = struct{}{}
		} else if schedule.ResolveCode(code).Kind == schedule.RestDay {
			restDay[emp.ID] = struct{}{}
		}
	}

	// Present = union of the pools, deduplicated.
	present := make(map[string]struct{})
	for _, snap := range poolSnaps {
		for _, id := range snap.ActiveIDs {
			present[id] = struct{}{}
		}
	}

	// First counted punch of the shift instance decides the status.
	statuses := make(map[string]attendance.Status)
	for _, ev := range checkIns {
		if _, seen := statuses[ev.EmployeeID]; seen {
			continue
		}
		if st, counted := classifier.ForBand(ev.Timestamp, band); counted {
			statuses[ev.EmployeeID] = st
		}
	}

	resp := &dashboard.DashboardResponse{
		CurrentShift:    string(res.Shift),
		OperationalDate: res.DateKey(),
		UpdatedAt:       now.In(shiftcal.Location).Format(time.RFC3339),
		Pools:           make(map[string]dashboard.PoolStat, len(s.pools)),
	}

	for _, emp := range roster {
		bumpCount(&resp.TotalEmployees, emp.Gender)
	}

	for id := range present {
		emp, known := byID[id]
		if !known {
			continue
		}
		resp.Present.Total++
		switch emp.Gender {
		case employee.GenderMale:
			resp.Present.Male++
		case employee.GenderFemale:
			resp.Present.Female++
		}
		if _, sched := scheduled[id]; !sched {
			continue
		}
		switch statuses[id] {
		case attendance.StatusOnTime:
			resp.Present.OnTime++
		case attendance.StatusLate:
			resp.Present.Late++
			bumpLate(&resp.LateComing, emp.Gender)
		case attendance.StatusHalfDay:
			resp.Present.HalfDay++
			bumpLate(&resp.LateComing, emp.Gender)
		}
	}
	resp.LateComing.Percentage = percentage(resp.LateComing.Total, len(scheduled))

	// Absent = scheduled \ present \ rest-day \ excluded. Pooled roles
	// are tracked by their own pool; exempt IDs never count as absent.
	for id := range scheduled {
		emp := byID[id]
		if _, ok := present[id]; ok {
			continue
		}
		if _, ok := restDay[id]; ok {
			continue
		}
		if s.roles.IsPooled(emp.Role) || s.roles.IsExempt(emp.Role, emp.ID) {
			continue
		}
		bumpCount(&resp.Absent, emp.Gender)
	}

	// Rest-day tile: employees on RD today who worked the current shift
	// yesterday, i.e. this shift's crew resting.
	resp.RestDay.TodayFormatted = res.OperationalDate.Format("Monday, 02 January 2006")
	for id := range restDay {
		a, ok := prevByID[id]
		if !ok {
			continue
		}
		if !schedule.MatchesShift(a.CodeFor(yesterday.Day()), res.Shift) {
			continue
		}
		resp.RestDay.Total++
		switch byID[id].Gender {
		case employee.GenderMale:
			resp.RestDay.Male++
		case employee.GenderFemale:
			resp.RestDay.Female++
		}
	}

	for i, pool := range s.pools {
		snap := poolSnaps[i]
		resp.Pools[pool.Name] = dashboard.PoolStat{
			Male:      snap.Male,
			Female:    snap.Female,
			Total:     snap.Total,
			ActiveIDs: snap.ActiveIDs,
		}
	}
	return resp, nil
}

func bumpCount(c *dashboard.CountStat, g employee.Gender) {
	c.Total++
	switch g {
	case employee.GenderMale:
		c.Male++
	case employee.GenderFemale:
		c.Female++
	}
}

func bumpLate(l *dashboard.LateComingStat, g employee.Gender) {
	l.Total++
	switch g {
	case employee.GenderMale:
		l.Male++
	case employee.GenderFemale:
		l.Female++
	}
}

func percentage(part, whole int) string {
	if whole == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}
