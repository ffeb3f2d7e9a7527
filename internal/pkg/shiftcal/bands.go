package shiftcal

// Window is an inclusive minute-of-day range.
type Window struct {
	Start int
	End   int
}

// Contains reports whether m falls inside the window.
func (w Window) Contains(m int) bool {
	return m >= w.Start && m <= w.End
}

// TimeBand holds every threshold for one shift. All values are minutes
// of local day; for wrapping shifts, post-midnight minutes are compared
// after Normalize adds a full day.
type TimeBand struct {
	Shift Shift

	// Check-in classification bounds used by the shift-wide dashboard
	// pass: punches before Early are not counted, punches after
	// HalfDayEnd fall outside the shift instance entirely.
	Early      int
	OnTimeEnd  int
	LateEnd    int
	HalfDayEnd int
	Wraps      bool

	// Per-employee on-time sub-windows. Morning has a single strict
	// window; Noon and Night carry an early-arrival band plus a
	// post-break band with its own cutoff.
	OnTimeWindows []Window

	// Expected checkout window: inside it a checkout is Incomplete,
	// at/after CheckoutEnd it is Complete, before CheckoutStart it is
	// a half day.
	CheckoutStart int
	CheckoutEnd   int
}

// Normalize shifts post-midnight minutes into the previous evening's
// frame for wrapping shifts. Every boundary comparison goes through
// this, not just the final bucket.
func (b TimeBand) Normalize(m int) int {
	if b.Wraps && m < nightWrapBefore {
		return m + 1440
	}
	return m
}

// wrappedHalfDayEnd returns the half-day bound in normalized minutes.
func (b TimeBand) wrappedHalfDayEnd() int {
	if b.Wraps {
		return b.HalfDayEnd + 1440
	}
	return b.HalfDayEnd
}

// InShiftWindow reports whether a normalized minute is a countable
// punch for this shift instance (>= Early, <= half-day bound).
func (b TimeBand) InShiftWindow(m int) bool {
	return m >= b.Early && m <= b.wrappedHalfDayEnd()
}

var bands = map[Shift]TimeBand{
	ShiftMorning: {
		Shift:      ShiftMorning,
		Early:      4*60 + 30,  // 04:30
		OnTimeEnd:  5*60 + 30,  // 05:30
		LateEnd:    7*60 + 30,  // 07:30
		HalfDayEnd: 12*60 + 29, // 12:29
		OnTimeWindows: []Window{
			{Start: 0, End: 5*60 + 30},
		},
		CheckoutStart: 13 * 60,   // 13:00
		CheckoutEnd:   13*60 + 30, // 13:30
	},
	ShiftNoon: {
		Shift:      ShiftNoon,
		Early:      12*60 + 30, // 12:30
		OnTimeEnd:  13*60 + 30, // 13:30
		LateEnd:    15*60 + 30, // 15:30
		HalfDayEnd: 20*60 + 29, // 20:29
		OnTimeWindows: []Window{
			{Start: 0, End: 9*60 + 30},            // early arrival, up to 09:30
			{Start: 10*60 + 31, End: 13*60 + 30},  // post-break, 10:31-13:30
		},
		CheckoutStart: 21 * 60,   // 21:00
		CheckoutEnd:   21*60 + 30, // 21:30
	},
	ShiftNight: {
		Shift:      ShiftNight,
		Early:      20*60 + 30, // 20:30
		OnTimeEnd:  21*60 + 30, // 21:30
		LateEnd:    23*60 + 30, // 23:30
		HalfDayEnd: 4*60 + 29,  // 04:29 next day
		Wraps:      true,
		OnTimeWindows: []Window{
			{Start: 0, End: 17*60 + 29},           // early arrival, before 17:30
			{Start: 18*60 + 30, End: 21*60 + 30},  // post-break, 18:30-21:30
		},
		CheckoutStart: 5 * 60,   // 05:00 next day
		CheckoutEnd:   5*60 + 30, // 05:30 next day
	},
}

// BandFor returns the time band for a shift.
func BandFor(s Shift) TimeBand {
	return bands[s]
}

// BandForCode returns the time band for an assignment code (A/B/C).
func BandForCode(code string) (TimeBand, bool) {
	s, ok := ShiftFromCode(code)
	if !ok {
		return TimeBand{}, false
	}
	return bands[s], true
}
