//go:build !linux

package eventlog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// JournalSource is only functional on Linux. Elsewhere it reports itself
// unreadable so the fetcher can fall back to dumps and the archive.
type JournalSource struct{}

// NewJournalSource builds the non-Linux placeholder.
func NewJournalSource(zerolog.Logger) *JournalSource {
	return &JournalSource{}
}

func (s *JournalSource) Name() string { return "journal" }

func (s *JournalSource) Events(context.Context, []ProviderFilter) ([]domain.Event, error) {
	return nil, errors.New("systemd journal requires linux")
}
