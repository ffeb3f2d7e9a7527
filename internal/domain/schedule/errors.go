package schedule

import "errors"

var ErrMalformedAssignment = errors.New("malformed assignment record")
