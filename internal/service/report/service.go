// Package report builds the monthly per-employee attendance matrix:
// one row per employee, one cell per day, with punch times, derived
// statuses, remarks, and a month rollup.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftwatch/attendance-backend-go/internal/service/classifier"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	schedule.AssignmentRepository
	attendance.PunchRepository

	roles      *roles.Table
	classifier *classifier.Classifier

	// Now is the clock; swapped in tests.
	Now func() time.Time
}

func NewReportService(
	empRepo employee.EmployeeRepository,
	assignRepo schedule.AssignmentRepository,
	punchRepo attendance.PunchRepository,
	roleTable *roles.Table,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   empRepo,
		AssignmentRepository: assignRepo,
		PunchRepository:      punchRepo,
		roles:                roleTable,
		classifier:           classifier.New(roleTable),
		Now:                  time.Now,
	}
}

// dayPunches holds the latest punch of each kind for one employee-day.
type dayPunches struct {
	in  time.Time
	out time.Time
}

// GetMonthlyReports implements report.ReportService.
//
// Night shifts check out on the next calendar morning, so the punch
// window extends one day past the month and a reattribution pass moves
// each unmatched next-day checkout back to its night day. Moving a
// checkout frees its calendar day, so consecutive night days chain;
// the pass repeats until no punch moves.
func (s *ReportServiceImpl) GetMonthlyReports(ctx context.Context, employeeIDs []string, year, month int) (*report.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, attendance.ErrInvalidMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, shiftcal.Location)
	nextMonth := monthStart.AddDate(0, 1, 0)
	daysInMonth := nextMonth.AddDate(0, 0, -1).Day()
	today := s.Now().In(shiftcal.Location)

	var (
		population  []employee.Employee
		assignments []schedule.MonthlyAssignment
		checkIns    []attendance.PunchEvent
		checkOuts   []attendance.PunchEvent
	)

	punchStart := monthStart.UTC()
	punchEnd := nextMonth.AddDate(0, 0, 1).UTC()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if len(employeeIDs) > 0 {
			population, err = s.ListByIDs(gCtx, employeeIDs)
		} else {
			population, err = s.List(gCtx)
		}
		if err != nil {
			return fmt.Errorf("load report population: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assignments, err = s.GetAssignments(gCtx, shiftcal.MonthKeyFor(year, time.Month(month)))
		if err != nil {
			return fmt.Errorf("load assignments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		checkIns, err = s.ListCheckIns(gCtx, punchStart, punchEnd, employeeIDs)
		if err != nil {
			return fmt.Errorf("load check-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		checkOuts, err = s.ListCheckOuts(gCtx, punchStart, punchEnd, employeeIDs)
		if err != nil {
			return fmt.Errorf("load check-outs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assignByID := make(map[string]schedule.MonthlyAssignment, len(assignments))
	for _, a := range assignments {
		assignByID[a.EmployeeID] = a
	}

	// Latest punch per (employee, local calendar date).
	byDay := make(map[string]map[string]*dayPunches)
	upsert := func(id, dateKey string) *dayPunches {
		days := byDay[id]
		if days == nil {
			days = make(map[string]*dayPunches)
			byDay[id] = days
		}
		dp := days[dateKey]
		if dp == nil {
			dp = &dayPunches{}
			days[dateKey] = dp
		}
		return dp
	}
	for _, ev := range checkIns {
		local := ev.Timestamp.In(shiftcal.Location)
		dp := upsert(ev.EmployeeID, local.Format("2006-01-02"))
		if ev.Timestamp.After(dp.in) {
			dp.in = ev.Timestamp
		}
	}
	for _, ev := range checkOuts {
		local := ev.Timestamp.In(shiftcal.Location)
		dp := upsert(ev.EmployeeID, local.Format("2006-01-02"))
		if ev.Timestamp.After(dp.out) {
			dp.out = ev.Timestamp
		}
	}

	resp := &report.MonthlyReport{
		Reports: make([]report.EmployeeReport, 0, len(population)),
		Meta: report.Meta{
			Year:          year,
			Month:         month,
			MonthName:     monthStart.Format("January"),
			DaysInMonth:   daysInMonth,
			EmployeeCount: len(population),
		},
	}

	for _, emp := range population {
		resp.Reports = append(resp.Reports, s.buildEmployeeReport(emp, assignByID[emp.ID], byDay[emp.ID], monthStart, daysInMonth, today))
	}
	return resp, nil
}

func (s *ReportServiceImpl) buildEmployeeReport(
	emp employee.Employee,
	assign schedule.MonthlyAssignment,
	days map[string]*dayPunches,
	monthStart time.Time,
	daysInMonth int,
	today time.Time,
) report.EmployeeReport {
	rep := report.EmployeeReport{
		EmployeeID: emp.ID,
		Gender:     string(emp.Gender),
		Role:       s.roles.DisplayRole(emp.ID, emp.Role),
		Attendance: make(map[string]report.DayEntry, daysInMonth),
	}

	// Working copy of the punch table; the reattribution pass moves
	// checkouts between days.
	sessions := make(map[string]dayPunches, len(days))
	for k, v := range days {
		sessions[k] = *v
	}

	// Reattribution pass: a night day with no checkout claims the next
	// day's checkout. The claimed punch moves, freeing the next day to
	// claim the one after it, so consecutive night days chain; repeat
	// until no punch moves.
	for changed := true; changed; {
		changed = false
		for day := daysInMonth; day >= 1; day-- {
			assigned := assign.Resolve(day)
			if assigned.Kind != schedule.Working || assigned.Shift != shiftcal.ShiftNight {
				continue
			}
			date := monthStart.AddDate(0, 0, day-1)
			key := date.Format("2006-01-02")
			cur := sessions[key]
			if !cur.out.IsZero() {
				continue
			}
			nextKey := date.AddDate(0, 0, 1).Format("2006-01-02")
			next := sessions[nextKey]
			if next.out.IsZero() {
				continue
			}
			cur.out, next.out = next.out, time.Time{}
			sessions[key] = cur
			sessions[nextKey] = next
			changed = true
		}
	}

	var sum report.Summary
	for day := 1; day <= daysInMonth; day++ {
		date := monthStart.AddDate(0, 0, day-1)
		dayKey := fmt.Sprintf("%d", day)

		assigned := assign.Resolve(day)
		switch assigned.Kind {
		case schedule.Working:
			sum.Assigned++
		case schedule.RestDay:
			sum.RestDays++
		}

		// Future days carry the planned shift only.
		if date.After(today) {
			rep.Attendance[dayKey] = report.DayEntry{Shift: shiftLabel(assigned), CheckIn: "-", CheckOut: "-"}
			continue
		}

		dp := sessions[date.Format("2006-01-02")]

		entry := s.buildDayEntry(emp, assigned, dp, date)
		rep.Attendance[dayKey] = entry

		switch {
		case assigned.Kind == schedule.Working && countsAsWorking(entry.CheckInStatus):
			sum.Working++
		case entry.Remark == remarkAbsent:
			sum.Absent++
		}
		if entry.CheckInStatus == string(attendance.StatusLate) {
			sum.Late++
		}
	}
	rep.Summary = sum
	return rep
}

const (
	remarkAbsent       = "Absent"
	remarkCompleted    = "Completed"
	remarkActiveNoOut  = "Active (No Checkout)"
	remarkOnlyCheckout = "Only Checkout (Invalid)"
	remarkRestDayPunch = "Punched on Rest Day"
	remarkOffDayPunch  = "Punched on Off Day"
)

func (s *ReportServiceImpl) buildDayEntry(emp employee.Employee, assigned schedule.Assignment, dp dayPunches, date time.Time) report.DayEntry {
	entry := report.DayEntry{
		Shift:    shiftLabel(assigned),
		CheckIn:  clock(dp.in),
		CheckOut: clock(dp.out),
	}

	hasIn := !dp.in.IsZero()
	hasOut := !dp.out.IsZero()

	if assigned.Kind != schedule.Working {
		if hasIn || hasOut {
			if assigned.Kind == schedule.RestDay {
				entry.Remark = remarkRestDayPunch
			} else {
				entry.Remark = remarkOffDayPunch
			}
		}
		return entry
	}

	if hasIn {
		entry.CheckInStatus = string(s.classifier.CheckIn(dp.in, emp.Role, emp.ID, assigned))
	}
	switch {
	case hasIn && hasOut:
		entry.CheckOutStatus = string(s.classifier.CheckOut(dp.out, emp.Role, emp.ID, assigned, true))
		entry.Remark = remarkCompleted
		entry.WorkingHours = workingHours(dp.in, dp.out)
	case hasIn:
		entry.CheckOutStatus = string(attendance.CheckoutMissing)
		entry.Remark = remarkActiveNoOut
	case hasOut:
		entry.CheckOutStatus = string(s.classifier.CheckOut(dp.out, emp.Role, emp.ID, assigned, false))
		entry.Remark = remarkOnlyCheckout
	default:
		if !s.roles.IsExempt(emp.Role, emp.ID) {
			entry.Remark = remarkAbsent
		}
	}
	return entry
}

// countsAsWorking reports whether a check-in status marks the day as
// worked; exempt (N/A) check-ins do not.
func countsAsWorking(checkInStatus string) bool {
	switch checkInStatus {
	case string(attendance.StatusOnTime), string(attendance.StatusLate), string(attendance.StatusHalfDay):
		return true
	}
	return false
}

func shiftLabel(a schedule.Assignment) string {
	switch a.Kind {
	case schedule.Working:
		return string(a.Shift)
	case schedule.RestDay:
		return "RD"
	default:
		if a.Code != "" {
			return a.Code
		}
		return "-"
	}
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(shiftcal.Location).Format("15:04")
}

// workingHours formats the worked span, crossing midnight when the
// checkout lands on the next calendar day.
func workingHours(in, out time.Time) string {
	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
