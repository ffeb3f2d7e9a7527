package response

import (
	"errors"
	"net/http"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/schedule"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeeRequired):
		BadRequest(w, "employee_id is required", nil)
	case errors.Is(err, attendance.ErrInvalidTimestamp):
		BadRequest(w, "Invalid timestamp, expected RFC3339", nil)
	case errors.Is(err, attendance.ErrUnknownPunchKind):
		BadRequest(w, "Unknown punch event type", nil)
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrMalformedAssignment):
		BadRequest(w, "Malformed shift assignment", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
