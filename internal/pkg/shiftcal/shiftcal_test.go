package shiftcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, Location)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}

func TestResolve_ShiftBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		at       string
		shift    Shift
		dateKey  string
	}{
		{"morning start", "2025-11-14 05:30", ShiftMorning, "2025-11-14"},
		{"late morning", "2025-11-14 12:59", ShiftMorning, "2025-11-14"},
		{"noon start", "2025-11-14 13:30", ShiftNoon, "2025-11-14"},
		{"evening", "2025-11-14 21:29", ShiftNoon, "2025-11-14"},
		{"night start", "2025-11-14 21:30", ShiftNight, "2025-11-14"},
		{"ten pm same date", "2025-11-14 22:00", ShiftNight, "2025-11-14"},
		{"after midnight previous date", "2025-11-15 02:00", ShiftNight, "2025-11-14"},
		{"just before morning", "2025-11-15 05:29", ShiftNight, "2025-11-14"},
		{"month boundary wrap", "2025-12-01 01:00", ShiftNight, "2025-11-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(localTime(t, tt.at))
			assert.Equal(t, tt.shift, res.Shift)
			assert.Equal(t, tt.dateKey, res.DateKey())
		})
	}
}

func TestResolve_IsPure(t *testing.T) {
	at := localTime(t, "2025-11-15 02:00")
	first := Resolve(at)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(at))
	}
}

func TestResolve_IgnoresHostZone(t *testing.T) {
	// Same instant expressed in UTC must resolve identically.
	at := localTime(t, "2025-11-15 02:00")
	assert.Equal(t, Resolve(at), Resolve(at.UTC()))
}

func TestShiftCodes(t *testing.T) {
	for _, s := range []Shift{ShiftMorning, ShiftNoon, ShiftNight} {
		got, ok := ShiftFromCode(s.Code())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ShiftFromCode("RD")
	assert.False(t, ok)
}

func TestBandNormalize_NightWrap(t *testing.T) {
	band := BandFor(ShiftNight)

	// 02:00 logically belongs to the previous evening.
	assert.Equal(t, 120+1440, band.Normalize(120))
	// 22:00 is unchanged.
	assert.Equal(t, 1320, band.Normalize(1320))
	// Non-wrapping shifts never adjust.
	assert.Equal(t, 120, BandFor(ShiftMorning).Normalize(120))
}

func TestBandInShiftWindow(t *testing.T) {
	morning := BandFor(ShiftMorning)
	assert.False(t, morning.InShiftWindow(269)) // 04:29, before early bound
	assert.True(t, morning.InShiftWindow(270))  // 04:30
	assert.True(t, morning.InShiftWindow(749))  // 12:29
	assert.False(t, morning.InShiftWindow(750))

	night := BandFor(ShiftNight)
	assert.True(t, night.InShiftWindow(night.Normalize(1230))) // 20:30
	assert.True(t, night.InShiftWindow(night.Normalize(120)))  // 02:00 → wrapped
	assert.False(t, night.InShiftWindow(night.Normalize(300))) // 05:00 is past the instance
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(localTime(t, "2025-11-14 16:45"))
	assert.Equal(t, localTime(t, "2025-11-14 00:00").UTC(), start)
	assert.Equal(t, localTime(t, "2025-11-15 00:00").UTC(), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestMonthKeys(t *testing.T) {
	assert.Equal(t, "2025-11", MonthKey(localTime(t, "2025-11-14 10:00")))
	assert.Equal(t, "2025-03", MonthKeyFor(2025, time.March))
}
