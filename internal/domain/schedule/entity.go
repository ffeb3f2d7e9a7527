package schedule

import (
	"strconv"
	"strings"

	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
)

// MonthlyAssignment is one employee's sparse day→code map for a single
// month. Day keys may be zero-padded ("05") or bare ("5"); both resolve
// identically.
type MonthlyAssignment struct {
	EmployeeID string
	MonthKey   string // YYYY-MM
	Days       map[string]string
}

// AssignmentKind classifies a resolved day code.
type AssignmentKind int

const (
	// Unscheduled covers blank, unknown, and leave-like codes (OFF,
	// W5, HOB, ...). Unscheduled employees are never penalized.
	Unscheduled AssignmentKind = iota
	RestDay
	Working
)

// Assignment is the per-employee, per-day scheduling decision.
type Assignment struct {
	Kind  AssignmentKind
	Shift shiftcal.Shift // set only when Kind == Working
	Code  string         // normalized raw code
}

// CodeFor looks up the raw code for a day of month, accepting both
// zero-padded and bare keys.
func (m MonthlyAssignment) CodeFor(day int) string {
	padded := zeroPad(day)
	if v, ok := m.Days[padded]; ok {
		return normalizeCode(v)
	}
	if v, ok := m.Days[strconv.Itoa(day)]; ok {
		return normalizeCode(v)
	}
	return ""
}

// Resolve turns a day's raw code into a scheduling decision.
func (m MonthlyAssignment) Resolve(day int) Assignment {
	return ResolveCode(m.CodeFor(day))
}

// ResolveCode classifies a normalized assignment code. Codes other than
// A/B/C/RD resolve to Unscheduled.
func ResolveCode(code string) Assignment {
	code = normalizeCode(code)
	if code == "RD" {
		return Assignment{Kind: RestDay, Code: code}
	}
	if shift, ok := shiftcal.ShiftFromCode(code); ok {
		return Assignment{Kind: Working, Shift: shift, Code: code}
	}
	return Assignment{Kind: Unscheduled, Code: code}
}

// MatchesShift reports whether a raw day code puts the employee in the
// given shift's population. Assignment tables store either the code
// (A/B/C) or the display name (Morning/Noon/Night); both match.
func MatchesShift(code string, shift shiftcal.Shift) bool {
	code = normalizeCode(code)
	if code == shift.Code() {
		return true
	}
	return strings.EqualFold(code, string(shift))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func zeroPad(day int) string {
	if day < 10 {
		return "0" + strconv.Itoa(day)
	}
	return strconv.Itoa(day)
}
