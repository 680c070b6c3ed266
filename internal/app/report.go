package app

import "time"

type ReportRequest struct {
	Now  *time.Time
	Days int
}

func NewReportRequest() ReportRequest {
	return ReportRequest{}
}

type EntryView struct {
	Date            time.Time
	BookingHours    float64
	FlexHours       float64
	Uptime          time.Duration
	IntervalSummary string
	Anomalous       bool
	Weekend         bool
}

type ReportResponse struct {
	GeneratedAt       time.Time
	Since             time.Time
	Entries           []EntryView
	TotalBookingHours float64
	TotalFlexHours    float64
	Warnings          []string
}

type ReportErrorCode string

const (
	ReportErrLogUnavailable ReportErrorCode = "LOG_UNAVAILABLE"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
