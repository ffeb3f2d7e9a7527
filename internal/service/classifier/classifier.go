// Package classifier turns punch instants into attendance statuses.
// Both the check-in and check-out sides read the same shift band table;
// role exemptions come from the shared role table, passed in explicitly.
package classifier

import (
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
)

type Classifier struct {
	roles *roles.Table
}

func New(roleTable *roles.Table) *Classifier {
	return &Classifier{roles: roleTable}
}

// CheckIn classifies a single check-in against the employee's resolved
// assignment for the operational day.
//
// Exempt roles and IDs are status-blind. Without a working shift the
// employee is never penalized. Shift A is a strict single window; B and
// C carry an early-arrival band and a post-break band, each with its own
// on-time cutoff. Night minutes after local midnight get the +1440 wrap
// before every comparison.
func (c *Classifier) CheckIn(ts time.Time, role, employeeID string, assigned schedule.Assignment) attendance.Status {
	if c.roles.IsExempt(role, employeeID) {
		return attendance.StatusNotApplicable
	}
	if assigned.Kind != schedule.Working {
		return attendance.StatusOnTime
	}

	band := shiftcal.BandFor(assigned.Shift)
	m := band.Normalize(shiftcal.MinuteOfDay(ts))

	for _, w := range band.OnTimeWindows {
		if w.Contains(m) {
			return attendance.StatusOnTime
		}
	}
	if m <= band.LateEnd {
		return attendance.StatusLate
	}
	return attendance.StatusHalfDay
}

// ForBand buckets a punch against one shift instance's band: the
// shift-wide dashboard pass, where every punch is judged against the
// currently resolved shift. The second return is false when the punch
// falls outside the instance (before early, after the half-day bound)
// and must not be counted.
func ForBand(ts time.Time, band shiftcal.TimeBand) (attendance.Status, bool) {
	m := band.Normalize(shiftcal.MinuteOfDay(ts))
	if !band.InShiftWindow(m) {
		return attendance.StatusNone, false
	}
	switch {
	case m <= band.OnTimeEnd:
		return attendance.StatusOnTime, true
	case m <= band.LateEnd:
		return attendance.StatusLate, true
	default:
		return attendance.StatusHalfDay, true
	}
}

// CheckOut classifies a check-out against the shift's expected checkout
// window. hasCheckIn is whether a prior check-in exists for the same
// operational day; a checkout without one is a data-integrity edge case
// and classifies as a half day rather than erroring.
func (c *Classifier) CheckOut(ts time.Time, role, employeeID string, assigned schedule.Assignment, hasCheckIn bool) attendance.CheckoutStatus {
	if c.roles.IsExempt(role, employeeID) {
		return attendance.CheckoutNotApplicable
	}
	if assigned.Kind != schedule.Working {
		return attendance.CheckoutComplete
	}
	if !hasCheckIn {
		return attendance.CheckoutHalfDay
	}

	band := shiftcal.BandFor(assigned.Shift)
	m := shiftcal.MinuteOfDay(ts)

	switch {
	case m >= band.CheckoutStart && m < band.CheckoutEnd:
		return attendance.CheckoutIncomplete
	case m >= band.CheckoutEnd:
		return attendance.CheckoutComplete
	default:
		return attendance.CheckoutHalfDay
	}
}
