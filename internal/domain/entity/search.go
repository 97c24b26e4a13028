package entity

type PRStatus string

const (
	StatusAll    PRStatus = "all"
	StatusOpen   PRStatus = "open"
	StatusClosed PRStatus = "closed"
	StatusMerged PRStatus = "merged"
)

// SearchFilters are the caller-facing filters of a metrics query.
type SearchFilters struct {
	Repo    string
	From    string
	To      string
	Status  PRStatus
	Authors []string
	Page    int
	PerPage int
}

// RateLimitNotice is attached to a result when at least one PR was dropped
// because the upstream quota ran out.
type RateLimitNotice struct {
	Message string
	Dropped int
}

type SearchResult struct {
	TotalCount   int
	PullRequests []PullRequest
	Authors      []string
	RateLimit    *RateLimitNotice
}

type MetricsReport struct {
	SearchResult
	Aggregated AggregatedData
}
