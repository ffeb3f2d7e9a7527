package attendance

import "errors"

var (
	ErrEmployeeRequired   = errors.New("at least one employee ID is required")
	ErrInvalidTimestamp   = errors.New("timestamp must be an RFC3339 instant")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrPunchNotRecorded   = errors.New("punch event could not be recorded")
	ErrUnknownPunchKind   = errors.New("punch kind must be check_in or check_out")
)
