// Package shiftcal resolves wall-clock instants to shifts and operational
// dates, and owns the shift time-band table shared by the check-in and
// check-out classifiers.
package shiftcal

import (
	"fmt"
	"time"
)

// Location is the fixed operational time zone (UTC+5:30). All boundary
// math converts to this zone first; the host zone is never consulted.
var Location = time.FixedZone("UTC+05:30", 5*3600+30*60)

// SetOffset replaces the operational zone with a fixed offset in minutes
// east of UTC. Call once at startup, before any resolution.
func SetOffset(minutes int) {
	sign := "+"
	m := minutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	Location = time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60), minutes*60)
}

type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftNoon    Shift = "Noon"
	ShiftNight   Shift = "Night"
)

// Shift boundaries in minutes of local day.
const (
	morningStart = 5*60 + 30  // 05:30
	noonStart    = 13*60 + 30 // 13:30
	nightStart   = 21*60 + 30 // 21:30

	// Punches before 05:00 local belong to the previous evening's Night
	// window and get +1440 before band comparisons.
	nightWrapBefore = 5 * 60
)

// Code returns the assignment-table code for the shift (A/B/C).
func (s Shift) Code() string {
	switch s {
	case ShiftMorning:
		return "A"
	case ShiftNoon:
		return "B"
	case ShiftNight:
		return "C"
	}
	return ""
}

// ShiftFromCode maps an assignment code (A/B/C) to its shift.
func ShiftFromCode(code string) (Shift, bool) {
	switch code {
	case "A":
		return ShiftMorning, true
	case "B":
		return ShiftNoon, true
	case "C":
		return ShiftNight, true
	}
	return "", false
}

// Resolution is the shift instance an instant belongs to.
type Resolution struct {
	Shift           Shift
	OperationalDate time.Time // midnight in Location
}

// DateKey returns the operational date as YYYY-MM-DD.
func (r Resolution) DateKey() string {
	return r.OperationalDate.Format("2006-01-02")
}

// MonthKey returns the operational month as YYYY-MM.
func (r Resolution) MonthKey() string {
	return r.OperationalDate.Format("2006-01")
}

// DayOfMonth returns the operational day of month, 1-based.
func (r Resolution) DayOfMonth() int {
	return r.OperationalDate.Day()
}

// Resolve maps an instant to its shift and operational date. Pure:
// identical instants always yield identical results. Night instances
// before 05:30 local are attributed to the previous calendar date.
func Resolve(t time.Time) Resolution {
	local := t.In(Location)
	m := local.Hour()*60 + local.Minute()

	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)

	switch {
	case m >= nightStart || m < morningStart:
		if m < morningStart {
			date = date.AddDate(0, 0, -1)
		}
		return Resolution{Shift: ShiftNight, OperationalDate: date}
	case m < noonStart:
		return Resolution{Shift: ShiftMorning, OperationalDate: date}
	default:
		return Resolution{Shift: ShiftNoon, OperationalDate: date}
	}
}

// MinuteOfDay returns the minute of local day for an instant (00:00 = 0).
func MinuteOfDay(t time.Time) int {
	local := t.In(Location)
	return local.Hour()*60 + local.Minute()
}

// DayWindow returns the UTC instants bounding the local calendar day
// containing t: [local midnight, next local midnight).
func DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// MonthKey returns the YYYY-MM key for an instant's local month.
func MonthKey(t time.Time) string {
	return t.In(Location).Format("2006-01")
}

// MonthKeyFor builds the assignment-table key for a year and month.
func MonthKeyFor(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
