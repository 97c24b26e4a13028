package repository

import (
	"context"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

// SearchQuery is an already built issue search expression plus its offset page.
type SearchQuery struct {
	Q       string
	Page    int
	PerPage int
}

// HostingClient reads pull request data from the source-control host.
// Every call carries the caller's token.
type HostingClient interface {
	SearchIssues(ctx context.Context, token string, query SearchQuery) (entity.SearchPage, error)
	GetPullRequest(ctx context.Context, token, prURL string) (entity.PullRequestDetail, error)
	ListReviews(ctx context.Context, token, prURL string) ([]entity.Review, error)
	ListCommits(ctx context.Context, token, prURL string) ([]entity.Commit, error)
	ListIssueComments(ctx context.Context, token, commentsURL string) ([]entity.Comment, error)

	GetViewerLogin(ctx context.Context, token string) (string, error)
	ListUserRepos(ctx context.Context, token, login string) ([]entity.Repository, error)
	ListOrgs(ctx context.Context, token string) ([]string, error)
	ListOrgRepos(ctx context.Context, token, org string) ([]entity.Repository, error)
}
