package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/repository"
	"github.com/mark47B/pr-metrics/internal/infra/github"
)

// fakeHosting serves canned PR data keyed by API URL.
type fakeHosting struct {
	page      entity.SearchPage
	searchErr error

	details  map[string]entity.PullRequestDetail
	reviews  map[string][]entity.Review
	commits  map[string][]entity.Commit
	comments map[string][]entity.Comment
	// ключ: "<stage> <url>"
	errs map[string]error

	viewer   string
	own      []entity.Repository
	orgs     []string
	orgRepos map[string][]entity.Repository

	mu      sync.Mutex
	queries []repository.SearchQuery

	delay    time.Duration
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func newFakeHosting() *fakeHosting {
	return &fakeHosting{
		details:  map[string]entity.PullRequestDetail{},
		reviews:  map[string][]entity.Review{},
		commits:  map[string][]entity.Commit{},
		comments: map[string][]entity.Comment{},
		errs:     map[string]error{},
		orgRepos: map[string][]entity.Repository{},
	}
}

// addPR registers a stub and returns its API URL.
func (f *fakeHosting) addPR(stub entity.PullRequestStub, detail entity.PullRequestDetail) string {
	if stub.APIURL == "" {
		stub.APIURL = fmt.Sprintf("https://api.test/repos/acme/widgets/pulls/%d", stub.Number)
	}
	if stub.CommentsURL == "" {
		stub.CommentsURL = fmt.Sprintf("https://api.test/repos/acme/widgets/issues/%d/comments", stub.Number)
	}
	f.page.Items = append(f.page.Items, stub)
	f.page.TotalCount++
	f.details[stub.APIURL] = detail
	return stub.APIURL
}

func (f *fakeHosting) fail(stage, url string) error {
	return f.errs[stage+" "+url]
}

func (f *fakeHosting) SearchIssues(_ context.Context, _ string, query repository.SearchQuery) (entity.SearchPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.searchErr != nil {
		return entity.SearchPage{}, f.searchErr
	}
	return f.page, nil
}

func (f *fakeHosting) GetPullRequest(_ context.Context, _, prURL string) (entity.PullRequestDetail, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	if err := f.fail("detail", prURL); err != nil {
		return entity.PullRequestDetail{}, err
	}
	return f.details[prURL], nil
}

func (f *fakeHosting) ListReviews(_ context.Context, _, prURL string) ([]entity.Review, error) {
	if err := f.fail("reviews", prURL); err != nil {
		return nil, err
	}
	return f.reviews[prURL], nil
}

func (f *fakeHosting) ListCommits(_ context.Context, _, prURL string) ([]entity.Commit, error) {
	if err := f.fail("commits", prURL); err != nil {
		return nil, err
	}
	return f.commits[prURL], nil
}

func (f *fakeHosting) ListIssueComments(_ context.Context, _, commentsURL string) ([]entity.Comment, error) {
	if err := f.fail("comments", commentsURL); err != nil {
		return nil, err
	}
	return f.comments[commentsURL], nil
}

func (f *fakeHosting) GetViewerLogin(context.Context, string) (string, error) {
	return f.viewer, nil
}

func (f *fakeHosting) ListUserRepos(context.Context, string, string) ([]entity.Repository, error) {
	return f.own, nil
}

func (f *fakeHosting) ListOrgs(context.Context, string) ([]string, error) {
	return f.orgs, nil
}

func (f *fakeHosting) ListOrgRepos(_ context.Context, _, org string) ([]entity.Repository, error) {
	if err := f.fail("org", org); err != nil {
		return nil, err
	}
	return f.orgRepos[org], nil
}

func rateLimitErr(url string) error {
	return &github.UpstreamError{
		URL:         url,
		StatusCode:  http.StatusForbidden,
		Body:        `{"message":"API rate limit exceeded for user ID 1."}`,
		Message:     "API rate limit exceeded for user ID 1.",
		RateLimited: true,
	}
}

func serverErr(url string) error {
	return &github.UpstreamError{URL: url, StatusCode: http.StatusBadGateway, Body: "bad gateway", Message: "bad gateway"}
}

type snapshotRepoMock struct {
	mock.Mock
}

func (m *snapshotRepoMock) Save(ctx context.Context, snapshot entity.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *snapshotRepoMock) SavePullRequests(ctx context.Context, snapshotID string, prs []entity.SnapshotPR) error {
	return m.Called(ctx, snapshotID, prs).Error(0)
}

func (m *snapshotRepoMock) ListByRepo(ctx context.Context, repo string, limit int) ([]entity.Snapshot, error) {
	args := m.Called(ctx, repo, limit)
	snaps, _ := args.Get(0).([]entity.Snapshot)
	return snaps, args.Error(1)
}

func (m *snapshotRepoMock) ListPullRequests(ctx context.Context, snapshotID string) ([]entity.SnapshotPR, error) {
	args := m.Called(ctx, snapshotID)
	prs, _ := args.Get(0).([]entity.SnapshotPR)
	return prs, args.Error(1)
}

// inlineTx runs fn without a real transaction.
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

func (inlineTx) DoTx(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	return fn(ctx)
}

func newTestService(client repository.HostingClient, snapshots repository.SnapshotRepository) *ServiceImpl {
	var tx repository.TxManager
	if snapshots != nil {
		tx = inlineTx{}
	}
	return NewService(client, snapshots, tx, zap.NewNop().Sugar(), Options{
		DefaultRepo:  "acme/widgets",
		DefaultToken: "default-token",
	}).(*ServiceImpl)
}

var t0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func after(d time.Duration) *time.Time {
	t := t0.Add(d)
	return &t
}

func baseFilters() entity.SearchFilters {
	return entity.SearchFilters{From: "2024-01-01", To: "2024-01-31"}
}
