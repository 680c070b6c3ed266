package contract

import "github.com/mumpitzstuff/goodTimes/internal/app"

type SnapshotRequest = app.SnapshotRequest

func NewSnapshotRequest() SnapshotRequest {
	return app.NewSnapshotRequest()
}

type SnapshotResponse = app.SnapshotResponse

type PruneRequest = app.PruneRequest

func NewPruneRequest() PruneRequest {
	return app.NewPruneRequest()
}

type PruneResponse = app.PruneResponse

type ArchiveInfo = app.ArchiveInfo

type ArchiveErrorCode = app.ArchiveErrorCode

const (
	ArchiveErrLogUnavailable ArchiveErrorCode = app.ArchiveErrLogUnavailable
	ArchiveErrNoRetention    ArchiveErrorCode = app.ArchiveErrNoRetention
)

type ArchiveError = app.ArchiveError
