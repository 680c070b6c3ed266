package contract

import "github.com/mumpitzstuff/goodTimes/internal/accounting"

type ThresholdState = accounting.State

const (
	StateNone           ThresholdState = accounting.StateNone
	StateNormalReached  ThresholdState = accounting.StateNormalReached
	StateMaxApproaching ThresholdState = accounting.StateMaxApproaching
	StateMaxReached     ThresholdState = accounting.StateMaxReached
)
