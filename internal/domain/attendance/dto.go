package attendance

// PresenceSnapshot is the output of the session reconstructor for one
// pool: who is currently inside, with a gender breakdown. ActiveIDs is
// sorted by employee ID for reproducible snapshots.
type PresenceSnapshot struct {
	Total     int      `json:"total"`
	Male      int      `json:"male"`
	Female    int      `json:"female"`
	ActiveIDs []string `json:"active_employee_ids"`
	UpdatedAt string   `json:"updated_at"`
}

// PunchLogEntry is one row of the latest-punch views (check-in and
// check-out logs shown on the operations screens).
type PunchLogEntry struct {
	EmployeeID   string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"project"`
	Time         string `json:"time"`      // local HH:MM
	Timestamp    string `json:"timestamp"` // RFC3339
	Status       string `json:"status"`
	Event        string `json:"event"`
}

// PunchStatusResponse answers an ad-hoc single-event classification.
type PunchStatusResponse struct {
	EmployeeID      string `json:"employee_id"`
	Shift           string `json:"shift"`
	OperationalDate string `json:"operational_date"`
	Status          Status `json:"status"`
}

// RecordPunchRequest ingests one raw punch.
type RecordPunchRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Kind         string `json:"event_type"`
	Timestamp    string `json:"timestamp"` // RFC3339; empty = now
}
