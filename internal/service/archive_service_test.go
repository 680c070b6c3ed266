package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/archive"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

func newTestStore(t *testing.T) *archive.Store {
	t.Helper()
	db, err := archive.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return archive.NewStore(db)
}

func TestSnapshot_InsertsOnce(t *testing.T) {
	store := newTestStore(t)
	src := &stubSource{events: []domain.Event{
		boot(at(monday, 8, 0)),
		shutdown(at(monday, 12, 0)),
		boot(at(monday, 13, 0)),
	}}
	svc := NewArchiveService(testConfig(), newTestFetcher(src), store, "/tmp/events.db")

	now := at(monday, 17, 0)
	req := contract.NewSnapshotRequest()
	req.Now = &now

	resp, err := svc.Snapshot(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Fetched)
	assert.Equal(t, 3, resp.Inserted)
	assert.Equal(t, 3, resp.Total)

	// A second snapshot of the same window inserts nothing new.
	resp, err = svc.Snapshot(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Fetched)
	assert.Equal(t, 0, resp.Inserted)
	assert.Equal(t, 3, resp.Total)
}

func TestSnapshot_ArchivesSessionEventsRegardlessOfShowLogoff(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	cfg.Tracking.ShowLogoff = false
	src := &stubSource{}
	svc := NewArchiveService(cfg, newTestFetcher(src), store, "/tmp/events.db")

	now := at(monday, 17, 0)
	req := contract.NewSnapshotRequest()
	req.Now = &now

	_, err := svc.Snapshot(context.Background(), req)
	require.NoError(t, err)

	providers := make(map[string]bool)
	for _, f := range src.gotFilters {
		providers[f.Provider] = true
	}
	assert.True(t, providers[domain.ProviderLogind], "lock events are archived even when hidden from reports")
}

func TestSnapshot_LogUnavailable(t *testing.T) {
	store := newTestStore(t)
	src := &stubSource{err: errors.New("journal gone")}
	svc := NewArchiveService(testConfig(), newTestFetcher(src), store, "/tmp/events.db")

	resp, err := svc.Snapshot(context.Background(), contract.NewSnapshotRequest())
	require.Error(t, err)
	assert.Nil(t, resp)

	var aerr *contract.ArchiveError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, contract.ArchiveErrLogUnavailable, aerr.Code)
}

func TestPrune_UsesConfiguredRetention(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	cfg.Archive.RetentionDays = 7
	old := monday.AddDate(0, 0, -10)
	src := &stubSource{events: []domain.Event{
		boot(at(old, 9, 0)),
		boot(at(monday, 9, 0)),
	}}
	svc := NewArchiveService(cfg, newTestFetcher(src), store, "/tmp/events.db")

	now := at(monday, 12, 0)
	snapReq := contract.NewSnapshotRequest()
	snapReq.Now = &now
	_, err := svc.Snapshot(context.Background(), snapReq)
	require.NoError(t, err)

	req := contract.NewPruneRequest()
	req.Now = &now

	resp, err := svc.Prune(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), resp.Cutoff)
	assert.Equal(t, 1, resp.Removed)
	assert.Equal(t, 1, resp.Remaining)
}

func TestPrune_ExplicitKeepDaysOverridesRetention(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	cfg.Archive.RetentionDays = 7
	old := monday.AddDate(0, 0, -10)
	src := &stubSource{events: []domain.Event{
		boot(at(old, 9, 0)),
		boot(at(monday, 9, 0)),
	}}
	svc := NewArchiveService(cfg, newTestFetcher(src), store, "/tmp/events.db")

	now := at(monday, 12, 0)
	snapReq := contract.NewSnapshotRequest()
	snapReq.Now = &now
	_, err := svc.Snapshot(context.Background(), snapReq)
	require.NoError(t, err)

	req := contract.NewPruneRequest()
	req.Now = &now
	req.KeepDays = 20

	resp, err := svc.Prune(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Removed)
	assert.Equal(t, 2, resp.Remaining)
}

func TestPrune_NoRetentionConfigured(t *testing.T) {
	store := newTestStore(t)
	svc := NewArchiveService(testConfig(), newTestFetcher(&stubSource{}), store, "/tmp/events.db")

	resp, err := svc.Prune(context.Background(), contract.NewPruneRequest())
	require.Error(t, err)
	assert.Nil(t, resp)

	var aerr *contract.ArchiveError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, contract.ArchiveErrNoRetention, aerr.Code)
}

func TestInfo_EmptyAndPopulated(t *testing.T) {
	store := newTestStore(t)
	src := &stubSource{events: []domain.Event{
		boot(at(monday, 8, 0)),
		shutdown(at(monday, 16, 0)),
	}}
	svc := NewArchiveService(testConfig(), newTestFetcher(src), store, "/data/events.db")

	info, err := svc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/data/events.db", info.Path)
	assert.Zero(t, info.Count)
	assert.Nil(t, info.Oldest)
	assert.Nil(t, info.Newest)

	now := at(monday, 17, 0)
	req := contract.NewSnapshotRequest()
	req.Now = &now
	_, err = svc.Snapshot(context.Background(), req)
	require.NoError(t, err)

	info, err = svc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, info.Count)
	require.NotNil(t, info.Oldest)
	require.NotNil(t, info.Newest)
	assert.WithinDuration(t, at(monday, 8, 0), *info.Oldest, 0)
	assert.WithinDuration(t, at(monday, 16, 0), *info.Newest, 0)
}
