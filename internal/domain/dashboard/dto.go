package dashboard

// CountStat is a {male, female, total} breakdown. Every dashboard count
// ships with one.
type CountStat struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Total  int `json:"total"`
}

// PresentStat extends the breakdown with the check-in classification of
// the present population.
type PresentStat struct {
	Total   int `json:"total"`
	OnTime  int `json:"on_time"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
	Male    int `json:"male"`
	Female  int `json:"female"`
}

// RestDayStat is the rest-day breakdown for the current shift.
type RestDayStat struct {
	Male           int    `json:"male"`
	Female         int    `json:"female"`
	Total          int    `json:"total"`
	TodayFormatted string `json:"today_formatted"`
}

// LateComingStat folds Late and Half day together, with the percentage
// over the scheduled population ("0.0%" when nobody is scheduled).
type LateComingStat struct {
	Male       int    `json:"male"`
	Female     int    `json:"female"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

// PoolStat is one role-segmented pool's presence tile. A failing pool
// degrades to a zeroed PoolStat; it never blanks the report.
type PoolStat struct {
	Male      int      `json:"male"`
	Female    int      `json:"female"`
	Total     int      `json:"total"`
	ActiveIDs []string `json:"active_employee_ids,omitempty"`
}

// DashboardResponse is the full aggregated report for the currently
// resolved shift. Always fully shaped; sub-fields may be zeroed.
type DashboardResponse struct {
	CurrentShift    string `json:"current_shift"`
	OperationalDate string `json:"operational_date"`
	UpdatedAt       string `json:"updated_at"`

	TotalEmployees CountStat      `json:"total_employees"`
	Present        PresentStat    `json:"present"`
	Absent         CountStat      `json:"absent"`
	RestDay        RestDayStat    `json:"rest_day"`
	LateComing     LateComingStat `json:"late_coming"`

	Pools map[string]PoolStat `json:"pools"`
}
