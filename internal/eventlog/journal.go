//go:build linux

package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-systemd/v22/sdjournal"
	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// JournalSource reads the local systemd journal through libsystemd.
type JournalSource struct {
	log zerolog.Logger
}

// NewJournalSource builds a source over the system journal.
func NewJournalSource(log zerolog.Logger) *JournalSource {
	return &JournalSource{log: log}
}

func (s *JournalSource) Name() string { return "journal" }

// Events reads every entry from the oldest filter bound onward and keeps the
// ones that match a filter. The journal-side match narrows the stream to the
// well-known message IDs plus everything logind says, since lock changes can
// only be recognized by their message text.
func (s *JournalSource) Events(ctx context.Context, filters []ProviderFilter) ([]domain.Event, error) {
	j, err := sdjournal.NewJournal()
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	for id := range messageIDCodes {
		if err := j.AddMatch(fieldMessageID + "=" + id); err != nil {
			return nil, fmt.Errorf("add journal match: %w", err)
		}
		if err := j.AddDisjunction(); err != nil {
			return nil, fmt.Errorf("add journal disjunction: %w", err)
		}
	}
	if err := j.AddMatch(fieldSyslogIdentifier + "=" + logindIdentifier); err != nil {
		return nil, fmt.Errorf("add journal match: %w", err)
	}

	since := earliestSince(filters)
	if err := j.SeekRealtimeUsec(uint64(since.UnixMicro())); err != nil {
		return nil, fmt.Errorf("seek journal to %s: %w", since, err)
	}

	var events []domain.Event
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := j.Next()
		if err != nil {
			return nil, fmt.Errorf("advance journal: %w", err)
		}
		if n == 0 {
			break
		}
		entry, err := j.GetEntry()
		if err != nil {
			return nil, fmt.Errorf("read journal entry: %w", err)
		}

		ev, ok := normalizeFields(entry.Fields, time.UnixMicro(int64(entry.RealtimeTimestamp)))
		if !ok {
			continue
		}
		if matches(ev, filters) {
			events = append(events, ev)
		}
	}

	s.log.Debug().Int("events", len(events)).Time("since", since).Msg("journal read complete")
	return events, nil
}
