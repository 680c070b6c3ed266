package contract

import "github.com/mumpitzstuff/goodTimes/internal/app"

type CheckRequest = app.CheckRequest

func NewCheckRequest() CheckRequest {
	return app.NewCheckRequest()
}

type CheckResponse = app.CheckResponse

type CheckErrorCode = app.CheckErrorCode

const (
	CheckErrLogUnavailable CheckErrorCode = app.CheckErrLogUnavailable
)

type CheckError = app.CheckError
