package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

type detailOutcome int

const (
	detailOK detailOutcome = iota
	// detail record contradicts the requested status
	detailInconsistent
	detailRateLimited
)

type detailResult struct {
	PR      entity.PullRequest
	Outcome detailOutcome
	Reason  string
}

// fetchDetails reads detail, reviews, commits and comments of one PR and
// derives its timeline and metrics. Inconsistent and rate-limited PRs come
// back as a non-OK outcome instead of an error.
func (s *ServiceImpl) fetchDetails(ctx context.Context, stub entity.PullRequestStub, token string, status entity.PRStatus) (detailResult, error) {
	s.log.Debugw("fetching PR details", "number", stub.Number, "url", stub.APIURL)

	detail, err := s.client.GetPullRequest(ctx, token, stub.APIURL)
	if err != nil {
		return s.detailFailure(stub, "detail", err)
	}

	if status == entity.StatusMerged && detail.MergedAt == nil {
		s.log.Warnw("PR marked as merged but no merged_at date found", "number", stub.Number)
		return detailResult{Outcome: detailInconsistent}, nil
	}

	var (
		reviews  []entity.Review
		commits  []entity.Commit
		comments []entity.Comment
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		reviews, err = s.client.ListReviews(ctx, token, stub.APIURL)
		return wrapStage("reviews", err)
	})
	g.Go(func() error {
		var err error
		commits, err = s.client.ListCommits(ctx, token, stub.APIURL)
		return wrapStage("commits", err)
	})
	g.Go(func() error {
		var err error
		comments, err = s.client.ListIssueComments(ctx, token, stub.CommentsURL)
		return wrapStage("comments", err)
	})
	if err := g.Wait(); err != nil {
		return s.detailFailure(stub, "", err)
	}

	pr := entity.PullRequest{
		Number:    stub.Number,
		Title:     stub.Title,
		URL:       stub.HTMLURL,
		Author:    stub.Author,
		Assignees: stub.Assignees,
		CreatedAt: stub.CreatedAt,
		ClosedAt:  detail.ClosedAt,
		MergedAt:  detail.MergedAt,
		State:     stub.State,
		Timeline:  buildTimeline(reviews, comments),
		Metrics:   computeMetrics(stub.CreatedAt, detail, reviews, commits),
	}
	if pr.Assignees == nil {
		pr.Assignees = []string{}
	}

	s.log.Infow("PR details fetched", "number", stub.Number)
	return detailResult{PR: pr, Outcome: detailOK}, nil
}

func (s *ServiceImpl) detailFailure(stub entity.PullRequestStub, stage string, err error) (detailResult, error) {
	if errors.Is(err, usecase.ErrRateLimited) {
		msg := upstreamMessage(err)
		s.log.Warnw("rate limit reached when fetching PR details", "number", stub.Number, "message", msg)
		return detailResult{Outcome: detailRateLimited, Reason: msg}, nil
	}
	return detailResult{}, fmt.Errorf("pull request #%d: %w", stub.Number, wrapStage(stage, err))
}

func wrapStage(stage string, err error) error {
	if err == nil || stage == "" {
		return err
	}
	return fmt.Errorf("fetch %s: %w", stage, err)
}

// upstreamMessage prefers the message GitHub sent over our wrapped text.
func upstreamMessage(err error) string {
	var um interface{ UpstreamMessage() string }
	if errors.As(err, &um) && um.UpstreamMessage() != "" {
		return um.UpstreamMessage()
	}
	return err.Error()
}

// buildTimeline merges submitted reviews and issue comments, oldest first.
// Equal timestamps keep reviews before comments and fetch order otherwise.
func buildTimeline(reviews []entity.Review, comments []entity.Comment) []entity.TimelineEvent {
	timeline := make([]entity.TimelineEvent, 0, len(reviews)+len(comments))
	for _, r := range reviews {
		if r.SubmittedAt == nil {
			continue // pending review
		}
		timeline = append(timeline, entity.TimelineEvent{
			Type:      entity.EventReview,
			Author:    r.Author,
			CreatedAt: *r.SubmittedAt,
			Body:      r.Body,
			State:     r.State,
		})
	}
	for _, c := range comments {
		timeline = append(timeline, entity.TimelineEvent{
			Type:      entity.EventComment,
			Author:    c.Author,
			CreatedAt: c.CreatedAt,
			Body:      c.Body,
		})
	}
	slices.SortStableFunc(timeline, func(a, b entity.TimelineEvent) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return timeline
}

func computeMetrics(createdAt time.Time, detail entity.PullRequestDetail, reviews []entity.Review, commits []entity.Commit) entity.PRMetrics {
	var m entity.PRMetrics

	firstReview := earliestReview(reviews, "")
	if firstReview != nil {
		m.TimeToFirstReview = secondsBetween(createdAt, *firstReview)
		if update := firstCommitAfter(commits, *firstReview); update != nil {
			m.TimeToFirstCodeUpdate = secondsBetween(*firstReview, *update)
		}
	}
	if approval := earliestReview(reviews, entity.ReviewApproved); approval != nil {
		m.TimeToFirstApproval = secondsBetween(createdAt, *approval)
	}
	if detail.ClosedAt != nil {
		m.TotalTimeToClose = secondsBetween(createdAt, *detail.ClosedAt)
	}
	return m
}

// earliestReview returns the submit time of the earliest review, optionally
// only among reviews in the given state. The first one wins a tie.
func earliestReview(reviews []entity.Review, state string) *time.Time {
	var earliest *time.Time
	for _, r := range reviews {
		if r.SubmittedAt == nil {
			continue
		}
		if state != "" && !strings.EqualFold(r.State, state) {
			continue
		}
		if earliest == nil || r.SubmittedAt.Before(*earliest) {
			earliest = r.SubmittedAt
		}
	}
	return earliest
}

func firstCommitAfter(commits []entity.Commit, after time.Time) *time.Time {
	var first *time.Time
	for i := range commits {
		at := commits[i].AuthoredAt
		if at.IsZero() || !at.After(after) {
			continue
		}
		if first == nil || at.Before(*first) {
			first = &commits[i].AuthoredAt
		}
	}
	return first
}

func secondsBetween(from, to time.Time) *int64 {
	d := int64(to.Sub(from) / time.Second)
	if d < 0 {
		d = 0
	}
	return &d
}
