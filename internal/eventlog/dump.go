package eventlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// maxDumpLine bounds one export line; entries with binary fields get large.
const maxDumpLine = 1024 * 1024

// DumpSource reads a journal export produced by journalctl -o json, one JSON
// object per line. It covers machines whose journal has already rotated and
// exports copied over from another host.
type DumpSource struct {
	path string
	log  zerolog.Logger
}

// NewDumpSource builds a source over the export file at path.
func NewDumpSource(path string, log zerolog.Logger) *DumpSource {
	return &DumpSource{path: path, log: log}
}

func (s *DumpSource) Name() string { return "dump:" + s.path }

// Events parses the dump tolerantly: malformed lines are counted and skipped,
// never fatal. The result is sorted even when the export was concatenated out
// of order.
func (s *DumpSource) Events(ctx context.Context, filters []ProviderFilter) ([]domain.Event, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open journal dump: %w", err)
	}
	defer f.Close()

	var (
		events  []domain.Event
		skipped int
		lineNo  int
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDumpLine)
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		ev, ok, err := parseDumpLine(line)
		if err != nil {
			skipped++
			s.log.Debug().Int("line", lineNo).Err(err).Msg("skipping malformed dump line")
			continue
		}
		if ok && matches(ev, filters) {
			events = append(events, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal dump: %w", err)
	}
	if skipped > 0 {
		s.log.Warn().Str("path", s.path).Int("lines", skipped).Msg("journal dump had malformed lines")
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

// parseDumpLine extracts one exported entry. journalctl emits most fields as
// strings but large or binary ones as arrays, so values are picked
// defensively and non-string fields read as absent.
func parseDumpLine(line []byte) (domain.Event, bool, error) {
	var raw map[string]any
	if err := json.Unmarshal(line, &raw); err != nil {
		return domain.Event{}, false, fmt.Errorf("parse json: %w", err)
	}

	usecStr := stringField(raw, "__REALTIME_TIMESTAMP")
	if usecStr == "" {
		return domain.Event{}, false, fmt.Errorf("missing __REALTIME_TIMESTAMP")
	}
	usec, err := strconv.ParseInt(usecStr, 10, 64)
	if err != nil {
		return domain.Event{}, false, fmt.Errorf("parse timestamp %q: %w", usecStr, err)
	}

	fields := map[string]string{
		fieldMessageID:        stringField(raw, fieldMessageID),
		fieldMessage:          stringField(raw, fieldMessage),
		fieldSyslogIdentifier: stringField(raw, fieldSyslogIdentifier),
	}
	ev, ok := normalizeFields(fields, time.UnixMicro(usec))
	return ev, ok, nil
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
