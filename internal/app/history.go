package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

func (s *ServiceImpl) historyEnabled() bool {
	return s.snapshots != nil && s.txManager != nil
}

// saveSnapshot stores the report with its per-PR metrics. Failures are only
// logged: the caller already has its answer.
func (s *ServiceImpl) saveSnapshot(ctx context.Context, filters entity.SearchFilters, report entity.MetricsReport) {
	if !s.historyEnabled() {
		return
	}

	snapshot := entity.Snapshot{
		ID:             uuid.NewString(),
		Repo:           filters.Repo,
		DateFrom:       filters.From,
		DateTo:         filters.To,
		Status:         filters.Status,
		Authors:        filters.Authors,
		TotalCount:     report.TotalCount,
		ProcessedCount: len(report.PullRequests),
		Aggregated:     report.Aggregated,
		CreatedAt:      time.Now().UTC(),
	}
	prs := make([]entity.SnapshotPR, 0, len(report.PullRequests))
	for _, pr := range report.PullRequests {
		prs = append(prs, entity.SnapshotPR{
			Number:  pr.Number,
			Title:   pr.Title,
			Author:  pr.Author,
			Metrics: pr.Metrics,
		})
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.snapshots.Save(txCtx, snapshot); err != nil {
			return err
		}
		return s.snapshots.SavePullRequests(txCtx, snapshot.ID, prs)
	})
	if err != nil {
		s.log.Warnw("failed to save metrics snapshot", "repo", filters.Repo, "error", err)
		return
	}
	s.log.Debugw("metrics snapshot saved", "id", snapshot.ID, "prs", len(prs))
}

func (s *ServiceImpl) ListSnapshots(ctx context.Context, repo string, limit int) ([]entity.Snapshot, error) {
	if !s.historyEnabled() {
		return nil, usecase.ErrHistoryDisabled
	}

	repo = strings.TrimSpace(repo)
	if repo == "" {
		repo = s.opts.DefaultRepo
	}
	if repo == "" {
		return nil, fmt.Errorf("%w: repo is required", usecase.ErrValidation)
	}

	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit < 0 || limit > maxHistoryLimit:
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", usecase.ErrValidation, maxHistoryLimit)
	}

	snapshots, err := s.snapshots.ListByRepo(ctx, repo, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

func (s *ServiceImpl) GetSnapshotPullRequests(ctx context.Context, snapshotID string) ([]entity.SnapshotPR, error) {
	if !s.historyEnabled() {
		return nil, usecase.ErrHistoryDisabled
	}
	if _, err := uuid.Parse(snapshotID); err != nil {
		return nil, fmt.Errorf("%w: invalid snapshot id %q", usecase.ErrValidation, snapshotID)
	}

	prs, err := s.snapshots.ListPullRequests(ctx, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("list snapshot pull requests: %w", err)
	}
	if prs == nil {
		prs = []entity.SnapshotPR{}
	}
	return prs, nil
}
