package report

// DayEntry is one employee-day in a monthly attendance report.
type DayEntry struct {
	Shift          string `json:"shift"` // display name or "-"
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	CheckInStatus  string `json:"check_in_status"`
	CheckOutStatus string `json:"check_out_status"`
	Remark         string `json:"remark"`
	WorkingHours   string `json:"working"`
}

// Summary is the per-employee month rollup.
type Summary struct {
	Assigned int `json:"assigned"`
	Working  int `json:"working"`
	RestDays int `json:"rd"`
	Absent   int `json:"absent"`
	Late     int `json:"late"`
}

// EmployeeReport is one employee's full month.
type EmployeeReport struct {
	EmployeeID string              `json:"employee_id"`
	Gender     string              `json:"gender"`
	Role       string              `json:"project"`
	Attendance map[string]DayEntry `json:"attendance"` // keyed by bare day number
	Summary    Summary             `json:"summaries"`
}

// Meta describes the requested month.
type Meta struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	DaysInMonth   int    `json:"days_in_month"`
	EmployeeCount int    `json:"employee_count"`
}

// MonthlyReport is the response for a monthly report request.
type MonthlyReport struct {
	Reports []EmployeeReport `json:"data"`
	Meta    Meta             `json:"meta"`
}
