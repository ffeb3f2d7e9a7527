// Package presence reconstructs who is currently inside from the raw
// punch streams. One algorithm serves every pool; pools differ only in
// population filter and lookback window.
package presence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
)

type PresenceServiceImpl struct {
	employee.EmployeeRepository
	attendance.PunchRepository

	// Now is the clock; swapped in tests.
	Now func() time.Time
}

func NewPresenceService(empRepo employee.EmployeeRepository, punchRepo attendance.PunchRepository) attendance.PresenceService {
	return &PresenceServiceImpl{
		EmployeeRepository: empRepo,
		PunchRepository:    punchRepo,
		Now:                time.Now,
	}
}

// Snapshot implements attendance.PresenceService.
//
// An employee is active when an in-window check-in exists and either no
// check-out followed it or the latest check-out precedes the latest
// check-in. The two latest timestamps are tracked independently; a
// check-out at or after the latest check-in closes the session.
func (s *PresenceServiceImpl) Snapshot(ctx context.Context, pool attendance.Pool) (attendance.PresenceSnapshot, error) {
	now := s.Now()

	population, err := s.resolvePopulation(ctx, pool)
	if err != nil {
		return attendance.PresenceSnapshot{}, fmt.Errorf("resolve %s pool population: %w", pool.Name, err)
	}

	ids := make([]string, 0, len(population))
	byID := make(map[string]employee.Employee, len(population))
	for _, emp := range population {
		ids = append(ids, emp.ID)
		byID[emp.ID] = emp
	}

	start := now.Add(-pool.Lookback)

	var checkIns, checkOuts []attendance.PunchEvent
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checkIns, err = s.ListCheckIns(gCtx, start, now, ids)
		return err
	})
	g.Go(func() error {
		var err error
		checkOuts, err = s.ListCheckOuts(gCtx, start, now, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.PresenceSnapshot{}, fmt.Errorf("load %s pool punches: %w", pool.Name, err)
	}

	latestIn := make(map[string]time.Time)
	for _, ev := range checkIns {
		if ev.Timestamp.After(latestIn[ev.EmployeeID]) {
			latestIn[ev.EmployeeID] = ev.Timestamp
		}
	}
	latestOut := make(map[string]time.Time)
	for _, ev := range checkOuts {
		if ev.Timestamp.After(latestOut[ev.EmployeeID]) {
			latestOut[ev.EmployeeID] = ev.Timestamp
		}
	}

	snapshot := attendance.PresenceSnapshot{
		ActiveIDs: []string{},
		UpdatedAt: now.In(shiftcal.Location).Format(time.RFC3339),
	}
	for id, in := range latestIn {
		if _, known := byID[id]; !known {
			continue
		}
		if out, ok := latestOut[id]; ok && !out.Before(in) {
			continue
		}
		snapshot.ActiveIDs = append(snapshot.ActiveIDs, id)
	}
	sort.Strings(snapshot.ActiveIDs)

	for _, id := range snapshot.ActiveIDs {
		snapshot.Total++
		switch byID[id].Gender {
		case employee.GenderMale:
			snapshot.Male++
		case employee.GenderFemale:
			snapshot.Female++
		}
	}
	return snapshot, nil
}

func (s *PresenceServiceImpl) resolvePopulation(ctx context.Context, pool attendance.Pool) ([]employee.Employee, error) {
	if len(pool.EmployeeIDs) > 0 {
		return s.ListByIDs(ctx, pool.EmployeeIDs)
	}
	if len(pool.Roles) > 0 {
		return s.ListByRoles(ctx, pool.Roles)
	}
	return s.List(ctx)
}
