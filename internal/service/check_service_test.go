package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/notify"
)

// checkConfig removes the break deductions so booking hours equal rounded
// uptime and the expected values stay readable.
func checkConfig() *config.Config {
	cfg := testConfig()
	cfg.Tracking.BreakfastBreak = 0
	cfg.Tracking.LunchBreak = 0
	return cfg
}

func runCheck(t *testing.T, cfg *config.Config, notifier notify.Notifier, events []domain.Event, now time.Time, observers ...UseCaseObserver) *contract.CheckResponse {
	t.Helper()
	src := &stubSource{events: events}
	svc := NewCheckService(cfg, newTestFetcher(src), notifier, zerolog.Nop(), observers...)

	req := contract.NewCheckRequest()
	req.Now = &now

	resp, err := svc.RunCheck(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func TestCheck_NoEvents(t *testing.T) {
	notifier := &captureNotifier{}
	resp := runCheck(t, checkConfig(), notifier, nil, at(monday, 12, 0))

	assert.Equal(t, contract.StateNone, resp.State)
	assert.Empty(t, resp.Message)
	assert.False(t, resp.Notified)
	assert.Empty(t, notifier.sent)
}

func TestCheck_BelowThresholds(t *testing.T) {
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 12, 0))

	assert.Equal(t, contract.StateNone, resp.State)
	assert.InDelta(t, 4.0, resp.BookingHours, 1e-9)
	assert.False(t, resp.Notified)
	assert.Empty(t, notifier.sent)
}

func TestCheck_NormalReached(t *testing.T) {
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 16, 1))

	assert.Equal(t, contract.StateNormalReached, resp.State)
	assert.InDelta(t, 8.0, resp.BookingHours, 1e-9)
	assert.Equal(t, 8*time.Hour+time.Minute, resp.Uptime)
	assert.Equal(t, 119*time.Minute, resp.Remaining)
	assert.Equal(t, at(monday, 18, 0), resp.LeaveBy)
	assert.Contains(t, resp.Message, "18:00")
	assert.Contains(t, resp.Message, "119 min")

	assert.True(t, resp.Notified)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Working time", notifier.sent[0].Title)
	assert.Equal(t, notify.SeverityInfo, notifier.sent[0].Severity)
}

func TestCheck_MaxApproaching(t *testing.T) {
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 17, 48))

	assert.Equal(t, contract.StateMaxApproaching, resp.State)
	assert.InDelta(t, 9.75, resp.BookingHours, 1e-9)
	assert.Equal(t, "Maximum working time reached in 12 minutes.", resp.Message)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.SeverityWarning, notifier.sent[0].Severity)
}

func TestCheck_MaxReached(t *testing.T) {
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 18, 16))

	assert.Equal(t, contract.StateMaxReached, resp.State)
	assert.InDelta(t, 10.25, resp.BookingHours, 1e-9)
	assert.Equal(t, "Maximum working time exceeded by 16 minutes.", resp.Message)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notify.SeverityCritical, notifier.sent[0].Severity)
}

func TestCheck_MaxBeatsApproachingAtBoundary(t *testing.T) {
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 18, 0))

	assert.Equal(t, contract.StateMaxReached, resp.State,
		"booking exactly at the maximum classifies as reached, not approaching")
	assert.Equal(t, "Maximum working time exceeded by 0 minutes.", resp.Message)
}

func TestCheck_NotifyDisabled(t *testing.T) {
	cfg := checkConfig()
	cfg.Check.Notify = false
	notifier := &captureNotifier{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, cfg, notifier, events, at(monday, 16, 1))

	assert.Equal(t, contract.StateNormalReached, resp.State)
	assert.False(t, resp.Notified)
	assert.Empty(t, notifier.sent)
}

func TestCheck_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := &captureNotifier{err: errors.New("session bus unreachable")}
	events := []domain.Event{boot(at(monday, 8, 0))}
	resp := runCheck(t, checkConfig(), notifier, events, at(monday, 16, 1))

	assert.Equal(t, contract.StateNormalReached, resp.State)
	assert.False(t, resp.Notified)
}

func TestCheck_ObserverSeesRun(t *testing.T) {
	obs := &captureObserver{}
	events := []domain.Event{boot(at(monday, 8, 0))}
	runCheck(t, checkConfig(), &captureNotifier{}, events, at(monday, 16, 1), obs)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "check", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, string(contract.StateNormalReached), obs.events[0].Fields["state"])
}

func TestCheck_LogUnavailable(t *testing.T) {
	src := &stubSource{err: errors.New("journal gone")}
	svc := NewCheckService(checkConfig(), newTestFetcher(src), &captureNotifier{}, zerolog.Nop())

	resp, err := svc.RunCheck(context.Background(), contract.NewCheckRequest())
	require.Error(t, err)
	assert.Nil(t, resp)

	var cerr *contract.CheckError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.CheckErrLogUnavailable, cerr.Code)
}
