package domain

import "time"

// Provider names as normalized by the event source adapters. The journal and
// dump sources map well-known message IDs onto these providers and the code
// constants below, so the classifier never sees raw journal fields.
const (
	ProviderSystemd = "systemd"
	ProviderSleep   = "systemd-sleep"
	ProviderLogind  = "systemd-logind"
)

// Provider-specific numeric event codes.
const (
	// ProviderSystemd
	CodeStartupFinished   = 1
	CodeShutdownInitiated = 2

	// ProviderSleep
	CodeSleepEntered = 3
	CodeSleepResumed = 4

	// ProviderLogind
	CodeSessionOpened      = 5
	CodeSessionClosed      = 6
	CodeSessionLockChanged = 7
)

// Event is a single OS-reported power or session transition. Payload carries
// the raw message text and is consulted only to tell lock and unlock apart.
type Event struct {
	Provider  string
	Code      int
	Timestamp time.Time
	Payload   string
}

// EventKind is the classification of an event for session reconstruction.
type EventKind string

const (
	KindBootWake        EventKind = "boot_wake"
	KindSuspendShutdown EventKind = "suspend_shutdown"
	KindSessionLock     EventKind = "session_lock"
	KindSessionUnlock   EventKind = "session_unlock"
	KindIgnored         EventKind = "ignored"
)

// IsStart reports whether the kind opens an active interval.
func (k EventKind) IsStart() bool {
	return k == KindBootWake || k == KindSessionUnlock
}

// IsStop reports whether the kind closes an active interval.
func (k EventKind) IsStop() bool {
	return k == KindSuspendShutdown || k == KindSessionLock
}

// ValidEventKinds is the canonical set of accepted kind strings for
// user-supplied classification rules.
var ValidEventKinds = map[string]bool{
	string(KindBootWake):        true,
	string(KindSuspendShutdown): true,
	string(KindSessionLock):     true,
	string(KindSessionUnlock):   true,
}
