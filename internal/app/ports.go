package app

import "context"

type ReportUseCase interface {
	BuildReport(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}

type CheckUseCase interface {
	RunCheck(ctx context.Context, req CheckRequest) (*CheckResponse, error)
}

type ArchiveUseCase interface {
	Snapshot(ctx context.Context, req SnapshotRequest) (*SnapshotResponse, error)
	Prune(ctx context.Context, req PruneRequest) (*PruneResponse, error)
	Info(ctx context.Context) (*ArchiveInfo, error)
}
