// Package attendance serves the punch-log views, ad-hoc punch
// classification, and raw punch ingestion.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftwatch/attendance-backend-go/internal/service/classifier"
)

type AttendanceServiceImpl struct {
	employee.EmployeeRepository
	schedule.AssignmentRepository
	attendance.PunchRepository

	roles      *roles.Table
	classifier *classifier.Classifier

	// Now is the clock; swapped in tests.
	Now func() time.Time
}

func NewAttendanceService(
	empRepo employee.EmployeeRepository,
	assignRepo schedule.AssignmentRepository,
	punchRepo attendance.PunchRepository,
	roleTable *roles.Table,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EmployeeRepository:   empRepo,
		AssignmentRepository: assignRepo,
		PunchRepository:      punchRepo,
		roles:                roleTable,
		classifier:           classifier.New(roleTable),
		Now:                  time.Now,
	}
}

// LatestCheckIns implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) LatestCheckIns(ctx context.Context) ([]attendance.PunchLogEntry, error) {
	return s.latestPunches(ctx, attendance.PunchCheckIn)
}

// LatestCheckOuts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) LatestCheckOuts(ctx context.Context) ([]attendance.PunchLogEntry, error) {
	return s.latestPunches(ctx, attendance.PunchCheckOut)
}

func (s *AttendanceServiceImpl) latestPunches(ctx context.Context, kind attendance.PunchKind) ([]attendance.PunchLogEntry, error) {
	now := s.Now()
	dayStart, _ := shiftcal.DayWindow(now)

	var (
		roster      []employee.Employee
		assignments []schedule.MonthlyAssignment
		checkIns    []attendance.PunchEvent
		checkOuts   []attendance.PunchEvent
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
		assignments, err = s.GetAssignments(gCtx, shiftcal.MonthKey(now))
		if err != nil {
			return fmt.Errorf("load assignments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		checkIns, err = s.ListCheckIns(gCtx, dayStart, now, nil)
		if err != nil {
			return fmt.Errorf("load check-ins: %w", err)
		}
		return nil
	})
	if kind == attendance.PunchCheckOut {
		g.Go(func() error {
			var err error
			checkOuts, err = s.ListCheckOuts(gCtx, dayStart, now, nil)
			if err != nil {
				return fmt.Errorf("load check-outs: %w", err)
			}
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

	events := checkIns
	if kind == attendance.PunchCheckOut {
		events = checkOuts
	}
	latest := make(map[string]attendance.PunchEvent)
	for _, ev := range events {
		if cur, ok := latest[ev.EmployeeID]; !ok || ev.Timestamp.After(cur.Timestamp) {
			latest[ev.EmployeeID] = ev
		}
	}
	hasIn := make(map[string]bool, len(checkIns))
	for _, ev := range checkIns {
		hasIn[ev.EmployeeID] = true
	}

	entries := make([]attendance.PunchLogEntry, 0, len(latest))
	for _, ev := range latest {
		emp := byID[ev.EmployeeID]
		res := shiftcal.Resolve(ev.Timestamp)
		assigned := schedule.Assignment{}
		if a, ok := assignByID[ev.EmployeeID]; ok {
			assigned = a.Resolve(res.DayOfMonth())
		}

		var status string
		if kind == attendance.PunchCheckIn {
			status = string(s.classifier.CheckIn(ev.Timestamp, emp.Role, ev.EmployeeID, assigned))
		} else {
			status = string(s.classifier.CheckOut(ev.Timestamp, emp.Role, ev.EmployeeID, assigned, hasIn[ev.EmployeeID]))
		}

		name := emp.Name
		if name == "" {
			name = ev.EmployeeName
		}
		entries = append(entries, attendance.PunchLogEntry{
			EmployeeID: ev.EmployeeID,
			Name:       name,
			Role:       s.roles.DisplayRole(ev.EmployeeID, emp.Role),
			Time:       ev.Timestamp.In(shiftcal.Location).Format("15:04"),
			Timestamp:  ev.Timestamp.In(shiftcal.Location).Format(time.RFC3339),
			Status:     status,
			Event:      string(kind),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp == entries[j].Timestamp {
			return entries[i].EmployeeID < entries[j].EmployeeID
		}
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}

// PunchStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchStatus(ctx context.Context, employeeID string, ts time.Time) (attendance.PunchStatusResponse, error) {
	if employeeID == "" {
		return attendance.PunchStatusResponse{}, attendance.ErrEmployeeRequired
	}

	emp, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.PunchStatusResponse{}, err
	}

	res := shiftcal.Resolve(ts)
	assignments, err := s.GetAssignments(ctx, res.MonthKey())
	if err != nil {
		return attendance.PunchStatusResponse{}, fmt.Errorf("load assignments: %w", err)
	}

	assigned := schedule.Assignment{}
	for _, a := range assignments {
		if a.EmployeeID == employeeID {
			assigned = a.Resolve(res.DayOfMonth())
			break
		}
	}

	return attendance.PunchStatusResponse{
		EmployeeID:      employeeID,
		Shift:           string(res.Shift),
		OperationalDate: res.DateKey(),
		Status:          s.classifier.CheckIn(ts, emp.Role, employeeID, assigned),
	}, nil
}

// RecordPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.PunchEvent, error) {
	if req.EmployeeID == "" {
		return attendance.PunchEvent{}, attendance.ErrEmployeeRequired
	}

	var kind attendance.PunchKind
	switch attendance.PunchKind(req.Kind) {
	case attendance.PunchCheckIn, attendance.PunchCheckOut:
		kind = attendance.PunchKind(req.Kind)
	default:
		return attendance.PunchEvent{}, attendance.ErrUnknownPunchKind
	}

	ts := s.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return attendance.PunchEvent{}, errors.Join(attendance.ErrInvalidTimestamp, err)
		}
		ts = parsed
	}

	event := attendance.PunchEvent{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Kind:         kind,
		Timestamp:    ts.UTC(),
	}
	recorded, err := s.PunchRepository.RecordPunch(ctx, event)
	if err != nil {
		return attendance.PunchEvent{}, fmt.Errorf("record punch: %w", err)
	}
	return recorded, nil
}
