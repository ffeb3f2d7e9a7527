package attendance

import "time"

// PunchKind distinguishes the two raw event streams.
type PunchKind string

const (
	PunchCheckIn  PunchKind = "check_in"
	PunchCheckOut PunchKind = "check_out"
)

// PunchEvent is one raw check-in or check-out. Events are immutable and
// append-only; ordering is by timestamp with arrival order breaking ties.
type PunchEvent struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Kind         PunchKind
	Timestamp    time.Time
}

// Status is the derived check-in classification. Never stored as ground
// truth; always recomputed from punches, assignment, and time bands.
type Status string

const (
	StatusOnTime        Status = "On time"
	StatusLate          Status = "Late"
	StatusHalfDay       Status = "Half day"
	StatusAbsent        Status = "Absent"
	StatusRestDay       Status = "Rest Day"
	StatusNotApplicable Status = "N/A"
	// StatusNone marks a punch outside the shift window (before the
	// early bound); it opens no session and is not counted.
	StatusNone Status = "-"
)

// CheckoutStatus is the derived check-out classification.
type CheckoutStatus string

const (
	CheckoutComplete      CheckoutStatus = "Complete"
	CheckoutIncomplete    CheckoutStatus = "Incomplete"
	CheckoutHalfDay       CheckoutStatus = "Half Day"
	CheckoutNotApplicable CheckoutStatus = "N/A"
	CheckoutMissing       CheckoutStatus = "No Checkout"
)
