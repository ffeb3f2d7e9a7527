package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	// GetMonthlyAttendance returns the per-employee month matrix
	GetMonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetMonthlyAttendance handles GET /reports/attendance?employee_ids=&year=&month=
func (h *reportHandlerImpl) GetMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(shiftcal.Location)
	year, month := now.Year(), int(now.Month())

	var errs validator.ValidationErrors
	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "must be numeric"})
		} else {
			year = v
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be numeric"})
		} else {
			month = v
		}
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	var employeeIDs []string
	if raw := r.URL.Query().Get("employee_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				employeeIDs = append(employeeIDs, id)
			}
		}
	}

	result, err := h.reportService.GetMonthlyReports(r.Context(), employeeIDs, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
