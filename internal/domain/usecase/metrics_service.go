package usecase

import (
	"context"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

// Выборка PR с таймлайнами и метриками
type PullRequestUseCase interface {
	// Найти PR по фильтрам и посчитать метрики каждого
	SearchPullRequests(ctx context.Context, filters entity.SearchFilters, token string) (entity.SearchResult, error)

	// То же самое + агрегаты по репозиторию, отчёт сохраняется в историю
	GetMetrics(ctx context.Context, filters entity.SearchFilters, token string) (entity.MetricsReport, error)
}

// Репозитории пользователя, сгруппированные по владельцу
type RepoUseCase interface {
	ListMyRepos(ctx context.Context, token string) (map[string][]entity.Repository, error)
}

// История отчётов
type HistoryUseCase interface {
	ListSnapshots(ctx context.Context, repo string, limit int) ([]entity.Snapshot, error)

	// Метрики отдельных PR из сохранённого отчёта
	GetSnapshotPullRequests(ctx context.Context, snapshotID string) ([]entity.SnapshotPR, error)
}

// Фасад для агрегации интерфейсов сервиса
type Service interface {
	PullRequestUseCase
	RepoUseCase
	HistoryUseCase
}
