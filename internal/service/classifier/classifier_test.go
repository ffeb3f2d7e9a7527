package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
)

func testTable() *roles.Table {
	return roles.NewTable(roles.Config{
		ExemptRoles: []string{"ADMIN", "STL", "TL", "TTL", "ASS. TL", "CLEANING", "JANITOR", "ER"},
		PooledRoles: []string{"TL", "TTL", "ASS. TL"},
		ExemptIDs:   []string{"1007"},
	})
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.July, day, hour, min, 0, 0, shiftcal.Location)
}

func TestCheckInMorning(t *testing.T) {
	c := New(testTable())
	working := schedule.ResolveCode("A")

	tests := []struct {
		name string
		ts   time.Time
		want attendance.Status
	}{
		{"early arrival", at(15, 4, 30), attendance.StatusOnTime},
		{"on the hour", at(15, 5, 0), attendance.StatusOnTime},
		{"at boundary", at(15, 5, 30), attendance.StatusOnTime},
		{"one past boundary", at(15, 5, 31), attendance.StatusLate},
		{"late", at(15, 6, 0), attendance.StatusLate},
		{"last late minute", at(15, 7, 30), attendance.StatusLate},
		{"half day", at(15, 8, 0), attendance.StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CheckIn(tt.ts, "OPERATOR", "2001", working))
		})
	}
}

func TestCheckInNoonDualWindows(t *testing.T) {
	c := New(testTable())
	working := schedule.ResolveCode("B")

	tests := []struct {
		name string
		ts   time.Time
		want attendance.Status
	}{
		{"early arrival band", at(15, 9, 0), attendance.StatusOnTime},
		{"early arrival edge", at(15, 9, 30), attendance.StatusOnTime},
		{"between windows", at(15, 10, 0), attendance.StatusLate},
		{"post-break on time", at(15, 13, 0), attendance.StatusOnTime},
		{"post-break edge", at(15, 13, 30), attendance.StatusOnTime},
		{"late", at(15, 14, 0), attendance.StatusLate},
		{"half day", at(15, 16, 0), attendance.StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CheckIn(tt.ts, "OPERATOR", "2001", working))
		})
	}
}

func TestCheckInNightWraparound(t *testing.T) {
	c := New(testTable())
	working := schedule.ResolveCode("C")

	tests := []struct {
		name string
		ts   time.Time
		want attendance.Status
	}{
		{"early arrival", at(15, 17, 0), attendance.StatusOnTime},
		{"post-break on time", at(15, 21, 0), attendance.StatusOnTime},
		{"shift start", at(15, 21, 30), attendance.StatusOnTime},
		{"late evening", at(15, 22, 30), attendance.StatusLate},
		{"last late minute", at(15, 23, 30), attendance.StatusLate},
		// Past midnight: the wrap puts these far beyond every late
		// boundary, never back into an on-time band.
		{"just past midnight", at(16, 0, 30), attendance.StatusHalfDay},
		{"deep into the night", at(16, 3, 0), attendance.StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CheckIn(tt.ts, "OPERATOR", "2001", working))
		})
	}
}

func TestCheckInExemptionAndUnscheduled(t *testing.T) {
	c := New(testTable())

	// Exempt roles never receive a time-based status, whatever the hour.
	for _, role := range []string{"ADMIN", "TL", "ass. tl", "cleaning"} {
		got := c.CheckIn(at(15, 11, 45), role, "2001", schedule.ResolveCode("A"))
		assert.Equal(t, attendance.StatusNotApplicable, got, role)
	}

	// Per-employee exemption wins over a non-exempt role.
	got := c.CheckIn(at(15, 11, 45), "OPERATOR", "1007", schedule.ResolveCode("A"))
	assert.Equal(t, attendance.StatusNotApplicable, got)

	// No working assignment: never penalized.
	assert.Equal(t, attendance.StatusOnTime,
		c.CheckIn(at(15, 11, 45), "OPERATOR", "2001", schedule.ResolveCode("")))
	assert.Equal(t, attendance.StatusOnTime,
		c.CheckIn(at(15, 11, 45), "OPERATOR", "2001", schedule.ResolveCode("RD")))
	assert.Equal(t, attendance.StatusOnTime,
		c.CheckIn(at(15, 11, 45), "OPERATOR", "2001", schedule.ResolveCode("W5")))
}

func TestForBand(t *testing.T) {
	morning := shiftcal.BandFor(shiftcal.ShiftMorning)
	night := shiftcal.BandFor(shiftcal.ShiftNight)

	tests := []struct {
		name    string
		ts      time.Time
		band    shiftcal.TimeBand
		want    attendance.Status
		counted bool
	}{
		{"before early bound", at(15, 4, 0), morning, attendance.StatusNone, false},
		{"on time", at(15, 5, 15), morning, attendance.StatusOnTime, true},
		{"late", at(15, 6, 0), morning, attendance.StatusLate, true},
		{"half day", at(15, 9, 0), morning, attendance.StatusHalfDay, true},
		{"past half-day bound", at(15, 12, 45), morning, attendance.StatusNone, false},
		{"night on time", at(15, 21, 0), night, attendance.StatusOnTime, true},
		{"night wrap half day", at(16, 2, 0), night, attendance.StatusHalfDay, true},
		{"night past wrap bound", at(16, 4, 45), night, attendance.StatusNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, counted := ForBand(tt.ts, tt.band)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.counted, counted)
		})
	}
}

func TestCheckOut(t *testing.T) {
	c := New(testTable())

	tests := []struct {
		name       string
		ts         time.Time
		code       string
		hasCheckIn bool
		want       attendance.CheckoutStatus
	}{
		{"morning complete", at(15, 13, 45), "A", true, attendance.CheckoutComplete},
		{"morning at window end", at(15, 13, 30), "A", true, attendance.CheckoutComplete},
		{"morning incomplete", at(15, 13, 10), "A", true, attendance.CheckoutIncomplete},
		{"morning too early", at(15, 12, 0), "A", true, attendance.CheckoutHalfDay},
		{"noon complete", at(15, 21, 40), "B", true, attendance.CheckoutComplete},
		{"noon incomplete", at(15, 21, 10), "B", true, attendance.CheckoutIncomplete},
		// Night checkouts land on the next calendar morning; the band
		// compares raw minutes, so a late evening checkout the same day
		// is already past the window.
		{"night next-morning complete", at(16, 5, 45), "C", true, attendance.CheckoutComplete},
		{"night next-morning incomplete", at(16, 5, 15), "C", true, attendance.CheckoutIncomplete},
		{"night too early", at(16, 4, 30), "C", true, attendance.CheckoutHalfDay},
		{"night same evening", at(15, 23, 0), "C", true, attendance.CheckoutComplete},
		{"no prior check-in", at(15, 13, 45), "A", false, attendance.CheckoutHalfDay},
		{"unscheduled", at(15, 13, 45), "", true, attendance.CheckoutComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CheckOut(tt.ts, "OPERATOR", "2001", schedule.ResolveCode(tt.code), tt.hasCheckIn)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckOutExempt(t *testing.T) {
	c := New(testTable())

	got := c.CheckOut(at(15, 2, 0), "ADMIN", "2001", schedule.ResolveCode("A"), false)
	assert.Equal(t, attendance.CheckoutNotApplicable, got)

	got = c.CheckOut(at(15, 2, 0), "OPERATOR", "1007", schedule.ResolveCode("A"), false)
	assert.Equal(t, attendance.CheckoutNotApplicable, got)
}
