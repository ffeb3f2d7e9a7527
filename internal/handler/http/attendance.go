package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	// ListCheckIns returns today's latest check-in per employee
	ListCheckIns(w http.ResponseWriter, r *http.Request)
	// ListCheckOuts returns today's latest check-out per employee
	ListCheckOuts(w http.ResponseWriter, r *http.Request)
	// GetPunchStatus classifies one (employee, instant) pair
	GetPunchStatus(w http.ResponseWriter, r *http.Request)
	// RecordPunch ingests one raw punch event
	RecordPunch(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListCheckIns handles GET /attendance/checkins
func (h *attendanceHandlerImpl) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.LatestCheckIns(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListCheckOuts handles GET /attendance/checkouts
func (h *attendanceHandlerImpl) ListCheckOuts(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.LatestCheckOuts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetPunchStatus handles GET /attendance/status?employee_id=&timestamp=
func (h *attendanceHandlerImpl) GetPunchStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	rawTS := r.URL.Query().Get("timestamp")

	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	ts := time.Now()
	if rawTS != "" {
		parsed, err := time.Parse(time.RFC3339, rawTS)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "must be RFC3339"})
		} else {
			ts = parsed
		}
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.attendanceService.PunchStatus(r.Context(), employeeID, ts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordPunch handles POST /attendance/punches
func (h *attendanceHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", map[string]string{
		"id":          event.ID,
		"employee_id": event.EmployeeID,
		"event_type":  string(event.Kind),
		"timestamp":   event.Timestamp.Format(time.RFC3339),
	})
}
