package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
)

type fakeAttendanceService struct {
	status   attendance.PunchStatusResponse
	recorded []attendance.RecordPunchRequest
	err      error
}

func (f *fakeAttendanceService) LatestCheckIns(ctx context.Context) ([]attendance.PunchLogEntry, error) {
	return []attendance.PunchLogEntry{{EmployeeID: "2001", Status: "On time", Event: "check_in"}}, f.err
}

func (f *fakeAttendanceService) LatestCheckOuts(ctx context.Context) ([]attendance.PunchLogEntry, error) {
	return nil, f.err
}

func (f *fakeAttendanceService) PunchStatus(ctx context.Context, employeeID string, ts time.Time) (attendance.PunchStatusResponse, error) {
	if f.err != nil {
		return attendance.PunchStatusResponse{}, f.err
	}
	return f.status, nil
}

func (f *fakeAttendanceService) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.PunchEvent, error) {
	if f.err != nil {
		return attendance.PunchEvent{}, f.err
	}
	f.recorded = append(f.recorded, req)
	return attendance.PunchEvent{
		ID:         "0a1b2c",
		EmployeeID: req.EmployeeID,
		Kind:       attendance.PunchKind(req.Kind),
		Timestamp:  time.Date(2025, time.July, 15, 4, 30, 0, 0, time.UTC),
	}, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestGetPunchStatus(t *testing.T) {
	svc := &fakeAttendanceService{status: attendance.PunchStatusResponse{
		EmployeeID:      "2001",
		Shift:           "Morning",
		OperationalDate: "2025-07-15",
		Status:          attendance.StatusLate,
	}}
	h := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance/status?employee_id=2001&timestamp=2025-07-15T06:00:00%2B05:30", nil)
	rec := httptest.NewRecorder()
	h.GetPunchStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Late", data["status"])
	assert.Equal(t, "Morning", data["shift"])
}

func TestGetPunchStatusValidation(t *testing.T) {
	h := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/status?timestamp=not-a-time", nil)
	rec := httptest.NewRecorder()
	h.GetPunchStatus(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "timestamp")
}

func TestRecordPunch(t *testing.T) {
	svc := &fakeAttendanceService{}
	h := NewAttendanceHandler(svc)

	payload := `{"employee_id":"2001","event_type":"check_in"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance/punches", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.RecordPunch(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.recorded, 1)
	assert.Equal(t, "2001", svc.recorded[0].EmployeeID)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "0a1b2c", data["id"])
}

func TestRecordPunchBadBody(t *testing.T) {
	h := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/attendance/punches", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.RecordPunch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordPunchDomainError(t *testing.T) {
	h := NewAttendanceHandler(&fakeAttendanceService{err: attendance.ErrUnknownPunchKind})

	payload := `{"employee_id":"2001","event_type":"nap"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance/punches", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.RecordPunch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
