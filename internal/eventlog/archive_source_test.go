package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/archive"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

func TestArchiveSource(t *testing.T) {
	database, err := archive.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close()
	})
	store := archive.NewStore(database)

	ctx := context.Background()
	_, err = store.BatchInsert(ctx, []domain.Event{
		{Provider: domain.ProviderSystemd, Code: domain.CodeStartupFinished, Timestamp: refTime},
		{Provider: domain.ProviderLogind, Code: domain.CodeSessionLockChanged, Timestamp: refTime.Add(4 * time.Hour), Payload: "Session 2 locked."},
		{Provider: domain.ProviderSystemd, Code: domain.CodeShutdownInitiated, Timestamp: refTime.Add(9 * time.Hour)},
	})
	require.NoError(t, err)

	src := NewArchiveSource(store)
	assert.Equal(t, "archive", src.Name())

	// Lock tracking off: only the power events pass.
	events, err := src.Events(ctx, DefaultFilters(refTime.Add(-time.Hour), false))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.CodeStartupFinished, events[0].Code)
	assert.Equal(t, domain.CodeShutdownInitiated, events[1].Code)

	// Lock tracking on: all three.
	events, err = src.Events(ctx, DefaultFilters(refTime.Add(-time.Hour), true))
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
