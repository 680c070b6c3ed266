package app

import (
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/accounting"
)

type CheckRequest struct {
	Now *time.Time
}

func NewCheckRequest() CheckRequest {
	return CheckRequest{}
}

type CheckResponse struct {
	GeneratedAt  time.Time
	State        accounting.State
	BookingHours float64
	Uptime       time.Duration
	Remaining    time.Duration
	LeaveBy      time.Time
	Message      string
	Notified     bool
}

type CheckErrorCode string

const (
	CheckErrLogUnavailable CheckErrorCode = "LOG_UNAVAILABLE"
)

type CheckError struct {
	Code    CheckErrorCode
	Message string
}

func (e *CheckError) Error() string {
	return string(e.Code) + ": " + e.Message
}
