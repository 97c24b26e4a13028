package handlers

import (
	"github.com/google/uuid"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

func toPullRequests(prs []entity.PullRequest) []gen.PullRequest {
	out := make([]gen.PullRequest, 0, len(prs))
	for _, pr := range prs {
		timeline := make([]gen.TimelineEvent, 0, len(pr.Timeline))
		for _, ev := range pr.Timeline {
			item := gen.TimelineEvent{
				Type:      gen.TimelineEventType(ev.Type),
				Author:    ev.Author,
				CreatedAt: ev.CreatedAt,
				Body:      ev.Body,
			}
			if ev.State != "" {
				state := ev.State
				item.State = &state
			}
			timeline = append(timeline, item)
		}
		assignees := pr.Assignees
		if assignees == nil {
			assignees = []string{}
		}
		out = append(out, gen.PullRequest{
			Number:    pr.Number,
			Title:     pr.Title,
			Url:       pr.URL,
			Author:    pr.Author,
			Assignees: assignees,
			CreatedAt: pr.CreatedAt,
			ClosedAt:  pr.ClosedAt,
			MergedAt:  pr.MergedAt,
			State:     pr.State,
			Timeline:  timeline,
			Metrics:   toMetrics(pr.Metrics),
		})
	}
	return out
}

func toMetrics(m entity.PRMetrics) gen.PullRequestMetrics {
	return gen.PullRequestMetrics{
		TimeToFirstReview:     m.TimeToFirstReview,
		TimeToFirstApproval:   m.TimeToFirstApproval,
		TimeToFirstCodeUpdate: m.TimeToFirstCodeUpdate,
		TotalTimeToClose:      m.TotalTimeToClose,
	}
}

func toAggregated(a entity.AggregatedData) gen.AggregatedData {
	conv := func(m entity.AggregatedMetric) gen.AggregatedMetric {
		return gen.AggregatedMetric{Average: m.Average, Median: m.Median}
	}
	return gen.AggregatedData{
		TimeToFirstReview:     conv(a.TimeToFirstReview),
		TimeToFirstApproval:   conv(a.TimeToFirstApproval),
		TimeToFirstCodeUpdate: conv(a.TimeToFirstCodeUpdate),
		TotalTimeToClose:      conv(a.TotalTimeToClose),
	}
}

func toRepos(grouped map[string][]entity.Repository) map[string][]gen.Repository {
	out := make(map[string][]gen.Repository, len(grouped))
	for group, repos := range grouped {
		items := make([]gen.Repository, 0, len(repos))
		for _, r := range repos {
			items = append(items, gen.Repository{
				Id:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				HtmlUrl:     r.HTMLURL,
			})
		}
		out[group] = items
	}
	return out
}

func toSnapshots(snapshots []entity.Snapshot) []gen.Snapshot {
	out := make([]gen.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		authors := s.Authors
		if authors == nil {
			authors = []string{}
		}
		// id приходит из БД, битым он быть не может
		id, _ := uuid.Parse(s.ID)
		out = append(out, gen.Snapshot{
			Id:             id,
			Repo:           s.Repo,
			From:           s.DateFrom,
			To:             s.DateTo,
			Status:         string(s.Status),
			Authors:        authors,
			TotalCount:     s.TotalCount,
			ProcessedCount: s.ProcessedCount,
			Aggregated:     toAggregated(s.Aggregated),
			CreatedAt:      s.CreatedAt,
		})
	}
	return out
}

func toSnapshotPulls(prs []entity.SnapshotPR) []gen.SnapshotPullRequest {
	out := make([]gen.SnapshotPullRequest, 0, len(prs))
	for _, pr := range prs {
		out = append(out, gen.SnapshotPullRequest{
			Number:  pr.Number,
			Title:   pr.Title,
			Author:  pr.Author,
			Metrics: toMetrics(pr.Metrics),
		})
	}
	return out
}
