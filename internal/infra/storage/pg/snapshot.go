package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/repository"
)

type SnapshotStorage struct {
	db *sql.DB
}

func NewSnapshotStorage(db *sql.DB) repository.SnapshotRepository {
	return &SnapshotStorage{db: db}
}

func (s *SnapshotStorage) Save(ctx context.Context, snap entity.Snapshot) error {
	q := querier(ctx, s.db)

	authors := snap.Authors
	if authors == nil {
		authors = []string{}
	}
	agg := snap.Aggregated

	_, err := q.ExecContext(ctx, `
		INSERT INTO metric_snapshots (
			id, repo, date_from, date_to, status, authors,
			total_count, processed_count,
			first_review_avg, first_review_median,
			first_approval_avg, first_approval_median,
			first_code_update_avg, first_code_update_median,
			close_avg, close_median,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		snap.ID, snap.Repo, snap.DateFrom, snap.DateTo, string(snap.Status), pq.Array(authors),
		snap.TotalCount, snap.ProcessedCount,
		nullFloat(agg.TimeToFirstReview.Average), nullFloat(agg.TimeToFirstReview.Median),
		nullFloat(agg.TimeToFirstApproval.Average), nullFloat(agg.TimeToFirstApproval.Median),
		nullFloat(agg.TimeToFirstCodeUpdate.Average), nullFloat(agg.TimeToFirstCodeUpdate.Median),
		nullFloat(agg.TotalTimeToClose.Average), nullFloat(agg.TotalTimeToClose.Median),
		snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStorage) SavePullRequests(ctx context.Context, snapshotID string, prs []entity.SnapshotPR) error {
	if len(prs) == 0 {
		return nil
	}

	q := querier(ctx, s.db)

	numbers := make([]int64, 0, len(prs))
	titles := make([]string, 0, len(prs))
	authors := make([]string, 0, len(prs))
	firstReview := make([]sql.NullInt64, 0, len(prs))
	firstApproval := make([]sql.NullInt64, 0, len(prs))
	firstUpdate := make([]sql.NullInt64, 0, len(prs))
	toClose := make([]sql.NullInt64, 0, len(prs))

	for _, pr := range prs {
		numbers = append(numbers, int64(pr.Number))
		titles = append(titles, pr.Title)
		authors = append(authors, pr.Author)
		firstReview = append(firstReview, nullInt(pr.Metrics.TimeToFirstReview))
		firstApproval = append(firstApproval, nullInt(pr.Metrics.TimeToFirstApproval))
		firstUpdate = append(firstUpdate, nullInt(pr.Metrics.TimeToFirstCodeUpdate))
		toClose = append(toClose, nullInt(pr.Metrics.TotalTimeToClose))
	}

	query := `
        INSERT INTO snapshot_pull_requests (
            snapshot_id, number, title, author,
            time_to_first_review, time_to_first_approval,
            time_to_first_code_update, total_time_to_close
        )
        SELECT
            $1,
            unnest($2::bigint[]),
            unnest($3::text[]),
            unnest($4::text[]),
            unnest($5::bigint[]),
            unnest($6::bigint[]),
            unnest($7::bigint[]),
            unnest($8::bigint[])
    `

	_, err := q.ExecContext(ctx, query,
		snapshotID,
		pq.Array(numbers),
		pq.Array(titles),
		pq.Array(authors),
		pq.Array(firstReview),
		pq.Array(firstApproval),
		pq.Array(firstUpdate),
		pq.Array(toClose),
	)
	if err != nil {
		return fmt.Errorf("bulk insert snapshot pull requests: %w", err)
	}
	return nil
}

func (s *SnapshotStorage) ListByRepo(ctx context.Context, repo string, limit int) ([]entity.Snapshot, error) {
	q := querier(ctx, s.db)

	rows, err := q.QueryContext(ctx, `
		SELECT
			id, repo, date_from, date_to, status, authors,
			total_count, processed_count,
			first_review_avg, first_review_median,
			first_approval_avg, first_approval_median,
			first_code_update_avg, first_code_update_median,
			close_avg, close_median,
			created_at
		FROM metric_snapshots
		WHERE repo = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, repo, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer CloseRows(rows)

	snapshots := []entity.Snapshot{}
	for rows.Next() {
		var (
			snap   entity.Snapshot
			status string
			agg    [8]sql.NullFloat64
		)
		if err := rows.Scan(
			&snap.ID, &snap.Repo, &snap.DateFrom, &snap.DateTo, &status, pq.Array(&snap.Authors),
			&snap.TotalCount, &snap.ProcessedCount,
			&agg[0], &agg[1], &agg[2], &agg[3], &agg[4], &agg[5], &agg[6], &agg[7],
			&snap.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.Status = entity.PRStatus(status)
		snap.Aggregated = entity.AggregatedData{
			TimeToFirstReview:     entity.AggregatedMetric{Average: floatPtr(agg[0]), Median: floatPtr(agg[1])},
			TimeToFirstApproval:   entity.AggregatedMetric{Average: floatPtr(agg[2]), Median: floatPtr(agg[3])},
			TimeToFirstCodeUpdate: entity.AggregatedMetric{Average: floatPtr(agg[4]), Median: floatPtr(agg[5])},
			TotalTimeToClose:      entity.AggregatedMetric{Average: floatPtr(agg[6]), Median: floatPtr(agg[7])},
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// ListPullRequests returns the per-PR rows of one snapshot ordered by number.
func (s *SnapshotStorage) ListPullRequests(ctx context.Context, snapshotID string) ([]entity.SnapshotPR, error) {
	q := querier(ctx, s.db)

	rows, err := q.QueryContext(ctx, `
		SELECT number, title, author,
		       time_to_first_review, time_to_first_approval,
		       time_to_first_code_update, total_time_to_close
		FROM snapshot_pull_requests
		WHERE snapshot_id = $1
		ORDER BY number
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("list snapshot pull requests: %w", err)
	}
	defer CloseRows(rows)

	var prs []entity.SnapshotPR
	for rows.Next() {
		var (
			pr entity.SnapshotPR
			m  [4]sql.NullInt64
		)
		if err := rows.Scan(&pr.Number, &pr.Title, &pr.Author, &m[0], &m[1], &m[2], &m[3]); err != nil {
			return nil, fmt.Errorf("scan snapshot pull request: %w", err)
		}
		pr.Metrics = entity.PRMetrics{
			TimeToFirstReview:     intPtr(m[0]),
			TimeToFirstApproval:   intPtr(m[1]),
			TimeToFirstCodeUpdate: intPtr(m[2]),
			TotalTimeToClose:      intPtr(m[3]),
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prs, nil
}
