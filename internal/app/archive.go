package app

import "time"

type SnapshotRequest struct {
	Now *time.Time
}

func NewSnapshotRequest() SnapshotRequest {
	return SnapshotRequest{}
}

type SnapshotResponse struct {
	Fetched  int
	Inserted int
	Total    int
}

type PruneRequest struct {
	Now      *time.Time
	KeepDays int
}

func NewPruneRequest() PruneRequest {
	return PruneRequest{}
}

type PruneResponse struct {
	Cutoff    time.Time
	Removed   int
	Remaining int
}

type ArchiveInfo struct {
	Path   string
	Count  int
	Oldest *time.Time
	Newest *time.Time
}

type ArchiveErrorCode string

const (
	ArchiveErrLogUnavailable ArchiveErrorCode = "LOG_UNAVAILABLE"
	ArchiveErrNoRetention    ArchiveErrorCode = "NO_RETENTION"
)

type ArchiveError struct {
	Code    ArchiveErrorCode
	Message string
}

func (e *ArchiveError) Error() string {
	return string(e.Code) + ": " + e.Message
}
