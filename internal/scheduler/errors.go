package scheduler

import (
	"errors"
	"fmt"
)

type RejectionCode string

const (
	CodeInvalidParameters RejectionCode = "INVALID_PARAMETERS"
	CodeMoveRejected      RejectionCode = "MOVE_REJECTED"
	CodeMilestoneConflict RejectionCode = "MILESTONE_CONFLICT"
	CodeResizeNotAllowed  RejectionCode = "RESIZE_NOT_ALLOWED"
	CodeUnknownJob        RejectionCode = "UNKNOWN_JOB"
)

// Rejection is a recoverable refusal of a schedule mutation. Every engine
// operation that returns a Rejection leaves its input snapshot untouched.
type Rejection struct {
	Code   RejectionCode
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Reason)
}

func reject(code RejectionCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a *Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
