package repository

import (
	"context"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	SavePullRequests(ctx context.Context, snapshotID string, prs []entity.SnapshotPR) error
	ListByRepo(ctx context.Context, repo string, limit int) ([]entity.Snapshot, error)
	ListPullRequests(ctx context.Context, snapshotID string) ([]entity.SnapshotPR, error)
}
