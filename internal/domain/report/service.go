package report

import "context"

// ReportService builds monthly per-employee attendance reports,
// including the backward reattribution of night-shift checkouts that
// land on the next calendar day.
type ReportService interface {
	GetMonthlyReports(ctx context.Context, employeeIDs []string, year, month int) (*MonthlyReport, error)
}
