package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

func str(s string) *string { return &s }

func TestSearch_MetricsOfOnePR(t *testing.T) {
	f := newFakeHosting()
	url := f.addPR(entity.PullRequestStub{
		Number: 1, Title: "Add widgets", Author: "alice", State: "closed", CreatedAt: t0,
	}, entity.PullRequestDetail{ClosedAt: after(3 * time.Hour), MergedAt: after(3 * time.Hour)})

	f.reviews[url] = []entity.Review{
		{Author: "bob", State: "APPROVED", SubmittedAt: after(2 * time.Hour)},
		{Author: "bob", State: "COMMENTED", Body: str("nit"), SubmittedAt: after(time.Hour)},
	}
	f.commits[url] = []entity.Commit{
		{SHA: "before", AuthoredAt: t0.Add(-time.Hour)},
		{SHA: "same", AuthoredAt: t0.Add(time.Hour)},
		{SHA: "late", AuthoredAt: t0.Add(time.Hour + 2000*time.Second)},
		{SHA: "update", AuthoredAt: t0.Add(time.Hour + 1400*time.Second)},
	}

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)
	require.Len(t, res.PullRequests, 1)

	m := res.PullRequests[0].Metrics
	require.NotNil(t, m.TimeToFirstReview)
	require.NotNil(t, m.TimeToFirstApproval)
	require.NotNil(t, m.TimeToFirstCodeUpdate)
	require.NotNil(t, m.TotalTimeToClose)
	assert.Equal(t, int64(3600), *m.TimeToFirstReview)
	assert.Equal(t, int64(7200), *m.TimeToFirstApproval)
	assert.Equal(t, int64(1400), *m.TimeToFirstCodeUpdate)
	assert.Equal(t, int64(10800), *m.TotalTimeToClose)
	assert.Nil(t, res.RateLimit)
}

func TestSearch_MissingEventsStayNil(t *testing.T) {
	f := newFakeHosting()
	openURL := f.addPR(entity.PullRequestStub{Number: 1, Author: "alice", State: "open", CreatedAt: t0}, entity.PullRequestDetail{})
	f.addPR(entity.PullRequestStub{Number: 2, Author: "bob", State: "closed", CreatedAt: t0}, entity.PullRequestDetail{ClosedAt: after(time.Minute)})
	f.reviews[openURL] = []entity.Review{{Author: "carol", State: "COMMENTED", SubmittedAt: after(time.Minute)}}

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)
	require.Len(t, res.PullRequests, 2)

	open := res.PullRequests[0].Metrics
	assert.NotNil(t, open.TimeToFirstReview)
	assert.Nil(t, open.TimeToFirstApproval)
	assert.Nil(t, open.TimeToFirstCodeUpdate)
	assert.Nil(t, open.TotalTimeToClose)

	// без ревью PR остаётся в выдаче
	noReviews := res.PullRequests[1].Metrics
	assert.Nil(t, noReviews.TimeToFirstReview)
	assert.Nil(t, noReviews.TimeToFirstApproval)
	assert.Nil(t, noReviews.TimeToFirstCodeUpdate)
	assert.Equal(t, int64(60), *noReviews.TotalTimeToClose)
}

func TestSearch_TimelineIsSortedAndSkipsPending(t *testing.T) {
	f := newFakeHosting()
	stub := entity.PullRequestStub{Number: 1, Author: "alice", State: "open", CreatedAt: t0}
	url := f.addPR(stub, entity.PullRequestDetail{})
	commentsURL := f.page.Items[0].CommentsURL

	f.reviews[url] = []entity.Review{
		{Author: "bob", State: "COMMENTED", SubmittedAt: after(3 * time.Minute)},
		{Author: "carol", State: "PENDING"},
		{Author: "dave", State: "APPROVED", SubmittedAt: after(time.Minute)},
	}
	f.comments[commentsURL] = []entity.Comment{
		{Author: "erin", Body: str("first"), CreatedAt: t0.Add(time.Minute)},
		{Author: "frank", Body: str("second"), CreatedAt: t0.Add(2 * time.Minute)},
	}

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)

	timeline := res.PullRequests[0].Timeline
	require.Len(t, timeline, 4)
	var authors []string
	for i, ev := range timeline {
		authors = append(authors, ev.Author)
		if i > 0 {
			assert.False(t, ev.CreatedAt.Before(timeline[i-1].CreatedAt))
		}
	}
	// при равном времени ревью идёт раньше комментария
	assert.Equal(t, []string{"dave", "erin", "frank", "bob"}, authors)
	assert.Equal(t, entity.EventReview, timeline[0].Type)
	assert.Equal(t, "APPROVED", timeline[0].State)
	assert.Equal(t, entity.EventComment, timeline[1].Type)

	assert.Equal(t, int64(60), *res.PullRequests[0].Metrics.TimeToFirstReview)
}

func TestSearch_MergedWithoutMergeDateIsDropped(t *testing.T) {
	f := newFakeHosting()
	f.addPR(entity.PullRequestStub{Number: 1, Author: "alice", State: "closed", CreatedAt: t0},
		entity.PullRequestDetail{ClosedAt: after(time.Hour), MergedAt: after(time.Hour)})
	f.addPR(entity.PullRequestStub{Number: 2, Author: "bob", State: "closed", CreatedAt: t0},
		entity.PullRequestDetail{ClosedAt: after(time.Hour)})

	filters := baseFilters()
	filters.Status = "Merged"

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), filters, "secret")
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalCount)
	require.Len(t, res.PullRequests, 1)
	assert.Equal(t, 1, res.PullRequests[0].Number)
	assert.Nil(t, res.RateLimit)
	assert.Contains(t, f.queries[0].Q, "state:closed")
}

func TestSearch_RateLimitedPRIsDropped(t *testing.T) {
	f := newFakeHosting()
	f.addPR(entity.PullRequestStub{Number: 1, Author: "alice", CreatedAt: t0}, entity.PullRequestDetail{})
	limited := f.addPR(entity.PullRequestStub{Number: 2, Author: "bob", CreatedAt: t0}, entity.PullRequestDetail{})
	f.addPR(entity.PullRequestStub{Number: 3, Author: "carol", CreatedAt: t0}, entity.PullRequestDetail{})
	f.errs["commits "+limited] = rateLimitErr(limited)

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalCount)
	require.Len(t, res.PullRequests, 2)
	assert.Less(t, len(res.PullRequests), res.TotalCount)
	assert.Equal(t, 1, res.PullRequests[0].Number)
	assert.Equal(t, 3, res.PullRequests[1].Number)

	require.NotNil(t, res.RateLimit)
	assert.Equal(t, 1, res.RateLimit.Dropped)
	assert.Equal(t, "API rate limit exceeded for user ID 1.", res.RateLimit.Message)
	assert.Equal(t, []string{"alice", "carol"}, res.Authors)
}

func TestSearch_UpstreamErrorFailsBatch(t *testing.T) {
	f := newFakeHosting()
	f.addPR(entity.PullRequestStub{Number: 1, Author: "alice", CreatedAt: t0}, entity.PullRequestDetail{})
	broken := f.addPR(entity.PullRequestStub{Number: 2, Author: "bob", CreatedAt: t0}, entity.PullRequestDetail{})
	f.errs["reviews "+broken] = serverErr(broken)

	svc := newTestService(f, nil)
	_, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUpstream)
	assert.NotErrorIs(t, err, usecase.ErrRateLimited)
	assert.Contains(t, err.Error(), "pull request #2")
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestSearch_SearchFailure(t *testing.T) {
	f := newFakeHosting()
	f.searchErr = serverErr("https://api.test/search/issues")

	svc := newTestService(f, nil)
	_, err := svc.GetMetrics(context.Background(), baseFilters(), "secret")
	assert.ErrorIs(t, err, usecase.ErrUpstream)
}

func TestSearch_RateLimitedSearchFails(t *testing.T) {
	f := newFakeHosting()
	f.searchErr = rateLimitErr("https://api.test/search/issues")

	svc := newTestService(f, nil)
	_, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	assert.ErrorIs(t, err, usecase.ErrRateLimited)
}

func TestSearch_BoundedConcurrency(t *testing.T) {
	f := newFakeHosting()
	f.delay = 20 * time.Millisecond
	for i := 1; i <= 10; i++ {
		f.addPR(entity.PullRequestStub{Number: i, Author: "alice", CreatedAt: t0}, entity.PullRequestDetail{})
	}

	svc := newTestService(f, nil)
	svc.opts.DetailConcurrency = 3

	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)
	require.Len(t, res.PullRequests, 10)
	for i, pr := range res.PullRequests {
		assert.Equal(t, i+1, pr.Number, "search order is kept")
	}
	assert.LessOrEqual(t, f.maxSeen.Load(), int32(3))
}

func TestSearch_CollectsAuthorsAndAssignees(t *testing.T) {
	f := newFakeHosting()
	f.addPR(entity.PullRequestStub{Number: 1, Author: "alice", Assignees: []string{"bob"}, CreatedAt: t0}, entity.PullRequestDetail{})
	f.addPR(entity.PullRequestStub{Number: 2, Author: "bob", Assignees: []string{"alice", ""}, CreatedAt: t0}, entity.PullRequestDetail{})

	svc := newTestService(f, nil)
	res, err := svc.SearchPullRequests(context.Background(), baseFilters(), "secret")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, res.Authors)
}

func TestResolveToken(t *testing.T) {
	svc := newTestService(newFakeHosting(), nil)

	token, err := svc.resolveToken("  ")
	require.NoError(t, err)
	assert.Equal(t, "default-token", token)

	token, err = svc.resolveToken("caller")
	require.NoError(t, err)
	assert.Equal(t, "caller", token)

	svc.opts.DefaultToken = ""
	_, err = svc.GetMetrics(context.Background(), baseFilters(), "")
	assert.ErrorIs(t, err, usecase.ErrTokenMissing)
}

func TestListMyRepos(t *testing.T) {
	f := newFakeHosting()
	f.viewer = "alice"
	f.own = []entity.Repository{{ID: 1, Name: "alice/dotfiles"}}
	f.orgs = []string{"acme", "empty"}
	f.orgRepos["acme"] = []entity.Repository{{ID: 2, Name: "acme/widgets"}}

	svc := newTestService(f, nil)
	grouped, err := svc.ListMyRepos(context.Background(), "secret")
	require.NoError(t, err)

	assert.Len(t, grouped, 3)
	assert.Equal(t, "alice/dotfiles", grouped[entity.OwnReposGroup][0].Name)
	assert.Equal(t, "acme/widgets", grouped["acme"][0].Name)
	assert.NotNil(t, grouped["empty"])
	assert.Empty(t, grouped["empty"])

	f.errs["org acme"] = serverErr("https://api.test/orgs/acme/repos")
	_, err = svc.ListMyRepos(context.Background(), "secret")
	assert.ErrorIs(t, err, usecase.ErrUpstream)
}
