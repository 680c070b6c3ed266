package domain

import "regexp"

// Rule maps one (provider, code, payload) combination onto an EventKind.
// PayloadPattern, when non-nil, must match the event payload for the rule to
// apply; it exists to split the single lock-state-changed code into lock and
// unlock. RequiresShowLogoff marks rules that only take effect when session
// lock tracking is enabled.
type Rule struct {
	Provider           string
	Code               int
	PayloadPattern     *regexp.Regexp
	RequiresShowLogoff bool
	Kind               EventKind
}

var (
	unlockedPattern = regexp.MustCompile(`(?i)\bunlocked\b`)
	lockedPattern   = regexp.MustCompile(`(?i)\blocked\b`)
)

// DefaultRules returns the built-in classification table for the systemd
// providers. The unlock rule precedes the lock rule so that the payload
// disambiguation is order-independent of the shared code.
func DefaultRules() []Rule {
	return []Rule{
		{Provider: ProviderSystemd, Code: CodeStartupFinished, Kind: KindBootWake},
		{Provider: ProviderSystemd, Code: CodeShutdownInitiated, Kind: KindSuspendShutdown},
		{Provider: ProviderSleep, Code: CodeSleepResumed, Kind: KindBootWake},
		{Provider: ProviderSleep, Code: CodeSleepEntered, Kind: KindSuspendShutdown},
		{Provider: ProviderLogind, Code: CodeSessionOpened, RequiresShowLogoff: true, Kind: KindSessionUnlock},
		{Provider: ProviderLogind, Code: CodeSessionClosed, RequiresShowLogoff: true, Kind: KindSessionLock},
		{Provider: ProviderLogind, Code: CodeSessionLockChanged, PayloadPattern: unlockedPattern, RequiresShowLogoff: true, Kind: KindSessionUnlock},
		{Provider: ProviderLogind, Code: CodeSessionLockChanged, PayloadPattern: lockedPattern, RequiresShowLogoff: true, Kind: KindSessionLock},
	}
}

// Classifier evaluates a rule table against events. Classification is a pure
// function of the event fields and the showLogoff flag; the first matching
// rule wins. The zero value classifies everything as ignored.
type Classifier struct {
	rules      []Rule
	showLogoff bool
}

// NewClassifier builds a classifier over the given rules.
func NewClassifier(rules []Rule, showLogoff bool) *Classifier {
	return &Classifier{rules: rules, showLogoff: showLogoff}
}

// Classify returns the kind of ev, or KindIgnored when no rule matches.
func (c *Classifier) Classify(ev Event) EventKind {
	for _, r := range c.rules {
		if r.Provider != ev.Provider || r.Code != ev.Code {
			continue
		}
		if r.RequiresShowLogoff && !c.showLogoff {
			continue
		}
		if r.PayloadPattern != nil && !r.PayloadPattern.MatchString(ev.Payload) {
			continue
		}
		return r.Kind
	}
	return KindIgnored
}
