package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close()
	})
	return NewStore(database)
}

var archBase = time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)

func archEvent(ts time.Time, code int, payload string) domain.Event {
	return domain.Event{
		Provider:  domain.ProviderSystemd,
		Code:      code,
		Timestamp: ts,
		Payload:   payload,
	}
}

func TestBatchInsertSkipsDuplicates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	batch := []domain.Event{
		archEvent(archBase, domain.CodeStartupFinished, "Startup finished."),
		archEvent(archBase.Add(9*time.Hour), domain.CodeShutdownInitiated, "Shutting down."),
	}

	inserted, err := s.BatchInsert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// The same snapshot taken again must not grow the archive.
	inserted, err = s.BatchInsert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBatchInsertEmpty(t *testing.T) {
	s := testStore(t)

	inserted, err := s.BatchInsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestEventsSinceRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := archEvent(archBase, domain.CodeStartupFinished, "Startup finished in 4.512s.")
	_, err := s.BatchInsert(ctx, []domain.Event{want})
	require.NoError(t, err)

	got, err := s.EventsSince(ctx, archBase.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want.Provider, got[0].Provider)
	assert.Equal(t, want.Code, got[0].Code)
	assert.Equal(t, want.Payload, got[0].Payload)
	assert.WithinDuration(t, want.Timestamp, got[0].Timestamp, 0)
	assert.Equal(t, time.Local, got[0].Timestamp.Location())
}

func TestEventsSinceOrdersSubSecondTimestamps(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Inserted newest first, with fractions whose string forms would sort
	// wrong without a fixed-width layout.
	_, err := s.BatchInsert(ctx, []domain.Event{
		archEvent(archBase.Add(500*time.Millisecond), domain.CodeShutdownInitiated, ""),
		archEvent(archBase.Add(250*time.Millisecond), domain.CodeStartupFinished, ""),
		archEvent(archBase, domain.CodeStartupFinished, ""),
	})
	require.NoError(t, err)

	got, err := s.EventsSince(ctx, archBase.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Timestamp.Before(got[i].Timestamp),
			"events must ascend by timestamp")
	}
}

func TestEventsSinceBoundIsInclusive(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.BatchInsert(ctx, []domain.Event{
		archEvent(archBase.Add(-48*time.Hour), domain.CodeShutdownInitiated, "old"),
		archEvent(archBase, domain.CodeStartupFinished, "boundary"),
		archEvent(archBase.Add(time.Hour), domain.CodeShutdownInitiated, "new"),
	})
	require.NoError(t, err)

	got, err := s.EventsSince(ctx, archBase)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "boundary", got[0].Payload)
}

func TestPrune(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.BatchInsert(ctx, []domain.Event{
		archEvent(archBase.AddDate(0, 0, -30), domain.CodeStartupFinished, ""),
		archEvent(archBase.AddDate(0, 0, -20), domain.CodeShutdownInitiated, ""),
		archEvent(archBase, domain.CodeStartupFinished, ""),
	})
	require.NoError(t, err)

	pruned, err := s.Prune(ctx, archBase.AddDate(0, 0, -14))
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBounds(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, _, ok, err := s.Bounds(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty archive has no bounds")

	_, err = s.BatchInsert(ctx, []domain.Event{
		archEvent(archBase, domain.CodeStartupFinished, ""),
		archEvent(archBase.Add(9*time.Hour), domain.CodeShutdownInitiated, ""),
	})
	require.NoError(t, err)

	oldest, newest, ok, err := s.Bounds(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, archBase, oldest, 0)
	assert.WithinDuration(t, archBase.Add(9*time.Hour), newest, 0)
}
