package entity

import "time"

// Snapshot is a persisted metrics report.
type Snapshot struct {
	ID             string
	Repo           string
	DateFrom       string
	DateTo         string
	Status         PRStatus
	Authors        []string
	TotalCount     int
	ProcessedCount int
	Aggregated     AggregatedData
	CreatedAt      time.Time
}

type SnapshotPR struct {
	Number  int
	Title   string
	Author  string
	Metrics PRMetrics
}
