package schedule

import (
	"testing"

	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/stretchr/testify/assert"
)

func TestCodeFor_AcceptsPaddedAndBareKeys(t *testing.T) {
	m := MonthlyAssignment{Days: map[string]string{
		"05": "A",
		"7":  "b",
		"14": "RD",
	}}

	assert.Equal(t, "A", m.CodeFor(5))
	assert.Equal(t, "B", m.CodeFor(7), "bare key and lowercase code still resolve")
	assert.Equal(t, "RD", m.CodeFor(14))
	assert.Equal(t, "", m.CodeFor(20))
}

func TestCodeFor_PaddedKeyWins(t *testing.T) {
	m := MonthlyAssignment{Days: map[string]string{"05": "A", "5": "C"}}
	assert.Equal(t, "A", m.CodeFor(5))
}

func TestResolveCode(t *testing.T) {
	assert.Equal(t, Working, ResolveCode("A").Kind)
	assert.Equal(t, shiftcal.ShiftMorning, ResolveCode("A").Shift)
	assert.Equal(t, shiftcal.ShiftNight, ResolveCode(" c ").Shift)
	assert.Equal(t, RestDay, ResolveCode("RD").Kind)

	// Leave and garbage codes are unscheduled, never rest day and
	// never a working shift.
	for _, code := range []string{"", "OFF", "W5", "HOB", "LEAVE", "??"} {
		got := ResolveCode(code)
		assert.Equal(t, Unscheduled, got.Kind, "code %q", code)
	}
}

func TestMatchesShift(t *testing.T) {
	assert.True(t, MatchesShift("A", shiftcal.ShiftMorning))
	assert.True(t, MatchesShift("Morning", shiftcal.ShiftMorning))
	assert.True(t, MatchesShift("night", shiftcal.ShiftNight))
	assert.False(t, MatchesShift("A", shiftcal.ShiftNoon))
	assert.False(t, MatchesShift("RD", shiftcal.ShiftMorning))
}
