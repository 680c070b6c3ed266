package service

import (
	"context"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

type ReportService interface {
	BuildReport(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
}

type CheckService interface {
	RunCheck(ctx context.Context, req contract.CheckRequest) (*contract.CheckResponse, error)
}

type ArchiveService interface {
	Snapshot(ctx context.Context, req contract.SnapshotRequest) (*contract.SnapshotResponse, error)
	Prune(ctx context.Context, req contract.PruneRequest) (*contract.PruneResponse, error)
	Info(ctx context.Context) (*contract.ArchiveInfo, error)
}
