package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/repository"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

// compile-time proof
var _ usecase.Service = (*ServiceImpl)(nil)

const DefaultDetailConcurrency = 8

type Options struct {
	// Repo used when the caller does not name one
	DefaultRepo string
	// Token used when the caller does not send one
	DefaultToken string
	// Upper bound of PR detail fetches in flight
	DetailConcurrency int
}

type ServiceImpl struct {
	client    repository.HostingClient
	snapshots repository.SnapshotRepository
	txManager repository.TxManager
	log       *zap.SugaredLogger
	opts      Options
}

// NewService wires the service. snapshots and txManager may both be nil,
// which turns the metrics history off.
func NewService(
	client repository.HostingClient,
	snapshots repository.SnapshotRepository,
	txManager repository.TxManager,
	log *zap.SugaredLogger,
	opts Options,
) usecase.Service {
	if opts.DetailConcurrency <= 0 {
		opts.DetailConcurrency = DefaultDetailConcurrency
	}
	return &ServiceImpl{
		client:    client,
		snapshots: snapshots,
		txManager: txManager,
		log:       log.Named("metrics"),
		opts:      opts,
	}
}

func (s *ServiceImpl) resolveToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = s.opts.DefaultToken
	}
	if token == "" {
		return "", usecase.ErrTokenMissing
	}
	return token, nil
}

func (s *ServiceImpl) SearchPullRequests(ctx context.Context, filters entity.SearchFilters, token string) (entity.SearchResult, error) {
	token, err := s.resolveToken(token)
	if err != nil {
		return entity.SearchResult{}, err
	}
	filters, err = s.normalizeFilters(filters)
	if err != nil {
		return entity.SearchResult{}, err
	}
	return s.search(ctx, filters, token)
}

func (s *ServiceImpl) GetMetrics(ctx context.Context, filters entity.SearchFilters, token string) (entity.MetricsReport, error) {
	token, err := s.resolveToken(token)
	if err != nil {
		return entity.MetricsReport{}, err
	}
	filters, err = s.normalizeFilters(filters)
	if err != nil {
		return entity.MetricsReport{}, err
	}

	result, err := s.search(ctx, filters, token)
	if err != nil {
		return entity.MetricsReport{}, err
	}

	report := entity.MetricsReport{
		SearchResult: result,
		Aggregated:   Aggregate(result.PullRequests),
	}

	// Отчёт с выпавшими по лимиту PR в историю не пишем
	if result.RateLimit == nil {
		s.saveSnapshot(ctx, filters, report)
	}
	return report, nil
}

// search runs one search page and fans detail fetches out over its hits.
// A transport error in any of them fails the whole batch.
func (s *ServiceImpl) search(ctx context.Context, filters entity.SearchFilters, token string) (entity.SearchResult, error) {
	s.log.Infow("processing request",
		"repo", filters.Repo,
		"from", filters.From,
		"to", filters.To,
		"status", filters.Status,
	)

	query := repository.SearchQuery{
		Q:       BuildSearchQuery(filters),
		Page:    filters.Page,
		PerPage: filters.PerPage,
	}
	page, err := s.client.SearchIssues(ctx, token, query)
	if err != nil {
		s.log.Errorw("GitHub search error", "query", query.Q, "error", err)
		return entity.SearchResult{}, fmt.Errorf("search issues: %w", err)
	}
	s.log.Infow("found pull requests, fetching detailed data", "count", len(page.Items), "total", page.TotalCount)

	results := make([]detailResult, len(page.Items))
	var g errgroup.Group
	g.SetLimit(s.opts.DetailConcurrency)
	for i, stub := range page.Items {
		g.Go(func() error {
			r, err := s.fetchDetails(ctx, stub, token, filters.Status)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Errorw("fetching PR details failed", "error", err)
		return entity.SearchResult{}, err
	}

	out := entity.SearchResult{
		TotalCount:   page.TotalCount,
		PullRequests: make([]entity.PullRequest, 0, len(results)),
	}
	for _, r := range results {
		switch r.Outcome {
		case detailOK:
			out.PullRequests = append(out.PullRequests, r.PR)
		case detailRateLimited:
			if out.RateLimit == nil {
				out.RateLimit = &entity.RateLimitNotice{Message: r.Reason}
			}
			out.RateLimit.Dropped++
		}
	}
	out.Authors = CollectAuthors(out.PullRequests)

	s.log.Infow("successfully processed pull request details",
		"processed", len(out.PullRequests),
		"total", out.TotalCount,
	)
	return out, nil
}
