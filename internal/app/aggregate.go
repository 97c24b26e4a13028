package app

import (
	"slices"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

// Aggregate computes mean and median for each metric over the PRs that have it.
func Aggregate(prs []entity.PullRequest) entity.AggregatedData {
	return entity.AggregatedData{
		TimeToFirstReview:     aggregateMetric(prs, func(m entity.PRMetrics) *int64 { return m.TimeToFirstReview }),
		TimeToFirstApproval:   aggregateMetric(prs, func(m entity.PRMetrics) *int64 { return m.TimeToFirstApproval }),
		TimeToFirstCodeUpdate: aggregateMetric(prs, func(m entity.PRMetrics) *int64 { return m.TimeToFirstCodeUpdate }),
		TotalTimeToClose:      aggregateMetric(prs, func(m entity.PRMetrics) *int64 { return m.TotalTimeToClose }),
	}
}

func aggregateMetric(prs []entity.PullRequest, pick func(entity.PRMetrics) *int64) entity.AggregatedMetric {
	values := make([]float64, 0, len(prs))
	for _, pr := range prs {
		if v := pick(pr.Metrics); v != nil {
			values = append(values, float64(*v))
		}
	}
	return entity.AggregatedMetric{
		Average: average(values),
		Median:  median(values),
	}
}

func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	m := sorted[mid]
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}

// CollectAuthors returns every author and assignee once, in order of first appearance.
func CollectAuthors(prs []entity.PullRequest) []string {
	seen := make(map[string]bool)
	authors := make([]string, 0, len(prs))
	add := func(login string) {
		if login == "" || seen[login] {
			return
		}
		seen[login] = true
		authors = append(authors, login)
	}
	for _, pr := range prs {
		add(pr.Author)
		for _, a := range pr.Assignees {
			add(a)
		}
	}
	return authors
}
