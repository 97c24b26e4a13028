package entity

import "time"

// PullRequestStub is a search hit before its detail endpoints are read.
type PullRequestStub struct {
	Number      int
	Title       string
	HTMLURL     string
	APIURL      string
	CommentsURL string
	Author      string
	Assignees   []string
	State       string
	CreatedAt   time.Time
}

// PullRequestDetail holds the fields of the PR detail record we rely on.
type PullRequestDetail struct {
	ClosedAt *time.Time
	MergedAt *time.Time
}

type PullRequest struct {
	Number    int
	Title     string
	URL       string
	Author    string
	Assignees []string
	CreatedAt time.Time
	ClosedAt  *time.Time
	MergedAt  *time.Time
	State     string
	Timeline  []TimelineEvent
	Metrics   PRMetrics
}

type EventType string

const (
	EventReview  EventType = "review"
	EventComment EventType = "comment"
)

type TimelineEvent struct {
	Type      EventType
	Author    string
	CreatedAt time.Time
	Body      *string
	State     string
}

const ReviewApproved = "APPROVED"

type Review struct {
	Author      string
	State       string
	Body        *string
	SubmittedAt *time.Time
}

type Commit struct {
	SHA        string
	AuthoredAt time.Time
}

type Comment struct {
	Author    string
	Body      *string
	CreatedAt time.Time
}

// SearchPage is one offset page of the issue search.
type SearchPage struct {
	TotalCount int
	Items      []PullRequestStub
}
