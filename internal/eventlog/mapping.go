package eventlog

import (
	"regexp"
	"strings"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// Well-known journal message IDs from sd-messages.h, dashes stripped the way
// journald stores them.
const (
	msgIDStartupFinished = "b07a249cd024414a82dd00cd181378ff"
	msgIDShutdown        = "98268866d1d54a499c4e98921d93bc40"
	msgIDSleepStart      = "6bbd95ee977941e497c48be27c254128"
	msgIDSleepStop       = "8811e6df2a8e40f58a94cea26f8ebf14"
	msgIDSessionStart    = "8d45620c1a4348dbb17410da57c60c66"
	msgIDSessionStop     = "3354939424b4456d9802ca8333ed424a"
)

// Journal field names consumed by the mapping.
const (
	fieldMessageID        = "MESSAGE_ID"
	fieldMessage          = "MESSAGE"
	fieldSyslogIdentifier = "SYSLOG_IDENTIFIER"
)

const logindIdentifier = "systemd-logind"

var messageIDCodes = map[string]struct {
	provider string
	code     int
}{
	msgIDStartupFinished: {domain.ProviderSystemd, domain.CodeStartupFinished},
	msgIDShutdown:        {domain.ProviderSystemd, domain.CodeShutdownInitiated},
	msgIDSleepStart:      {domain.ProviderSleep, domain.CodeSleepEntered},
	msgIDSleepStop:       {domain.ProviderSleep, domain.CodeSleepResumed},
	msgIDSessionStart:    {domain.ProviderLogind, domain.CodeSessionOpened},
	msgIDSessionStop:     {domain.ProviderLogind, domain.CodeSessionClosed},
}

// Lock state changes carry no message ID, only a recognizable logind message.
var lockStateMsg = regexp.MustCompile(`(?i)\bsession\b.*\b(un)?locked\b`)

// normalizeFields maps one journal entry onto the provider and code model.
// The second return is false for entries that are no power or session
// transition.
func normalizeFields(fields map[string]string, ts time.Time) (domain.Event, bool) {
	msg := fields[fieldMessage]
	if m, ok := messageIDCodes[strings.ToLower(fields[fieldMessageID])]; ok {
		return domain.Event{Provider: m.provider, Code: m.code, Timestamp: ts, Payload: msg}, true
	}
	if fields[fieldSyslogIdentifier] == logindIdentifier && lockStateMsg.MatchString(msg) {
		return domain.Event{
			Provider:  domain.ProviderLogind,
			Code:      domain.CodeSessionLockChanged,
			Timestamp: ts,
			Payload:   msg,
		}, true
	}
	return domain.Event{}, false
}
