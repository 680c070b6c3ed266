package contract

import "github.com/mumpitzstuff/goodTimes/internal/app"

type ReportRequest = app.ReportRequest

func NewReportRequest() ReportRequest {
	return app.NewReportRequest()
}

type EntryView = app.EntryView

type ReportResponse = app.ReportResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrLogUnavailable ReportErrorCode = app.ReportErrLogUnavailable
)

type ReportError = app.ReportError
