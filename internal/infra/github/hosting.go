package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/repository"
)

// SearchIssues runs one offset page of /search/issues. It does not follow
// Link headers: the caller picks the page.
func (c *Client) SearchIssues(ctx context.Context, token string, query repository.SearchQuery) (entity.SearchPage, error) {
	u := c.endpoint("/search/issues", url.Values{
		"q":        {query.Q},
		"sort":     {"created"},
		"order":    {"asc"},
		"page":     {strconv.Itoa(query.Page)},
		"per_page": {strconv.Itoa(query.PerPage)},
	})

	var resp searchResponse
	if err := c.getJSON(ctx, u, token, &resp); err != nil {
		return entity.SearchPage{}, err
	}

	page := entity.SearchPage{
		TotalCount: resp.TotalCount,
		Items:      make([]entity.PullRequestStub, 0, len(resp.Items)),
	}
	for _, it := range resp.Items {
		if it.PullRequest == nil || it.PullRequest.URL == "" {
			c.log.Warnw("search hit is not a pull request", "number", it.Number)
			continue
		}
		assignees := make([]string, 0, len(it.Assignees))
		for _, a := range it.Assignees {
			assignees = append(assignees, a.Login)
		}
		page.Items = append(page.Items, entity.PullRequestStub{
			Number:      it.Number,
			Title:       it.Title,
			HTMLURL:     it.HTMLURL,
			APIURL:      it.PullRequest.URL,
			CommentsURL: it.CommentsURL,
			Author:      it.User.login(),
			Assignees:   assignees,
			State:       it.State,
			CreatedAt:   it.CreatedAt,
		})
	}
	return page, nil
}

func (c *Client) GetPullRequest(ctx context.Context, token, prURL string) (entity.PullRequestDetail, error) {
	var pr pullRequest
	if err := c.getJSON(ctx, prURL, token, &pr); err != nil {
		return entity.PullRequestDetail{}, err
	}
	return entity.PullRequestDetail{ClosedAt: pr.ClosedAt, MergedAt: pr.MergedAt}, nil
}

func (c *Client) ListReviews(ctx context.Context, token, prURL string) ([]entity.Review, error) {
	raw, err := fetchAll[review](ctx, c, withPageSize(prURL+"/reviews"), token)
	if err != nil {
		return nil, err
	}
	reviews := make([]entity.Review, 0, len(raw))
	for _, r := range raw {
		reviews = append(reviews, entity.Review{
			Author:      r.User.login(),
			State:       r.State,
			Body:        r.Body,
			SubmittedAt: r.SubmittedAt,
		})
	}
	return reviews, nil
}

func (c *Client) ListCommits(ctx context.Context, token, prURL string) ([]entity.Commit, error) {
	raw, err := fetchAll[commit](ctx, c, withPageSize(prURL+"/commits"), token)
	if err != nil {
		return nil, err
	}
	commits := make([]entity.Commit, 0, len(raw))
	for _, cm := range raw {
		ec := entity.Commit{SHA: cm.SHA}
		if cm.Commit.Author != nil {
			ec.AuthoredAt = cm.Commit.Author.Date
		}
		commits = append(commits, ec)
	}
	return commits, nil
}

func (c *Client) ListIssueComments(ctx context.Context, token, commentsURL string) ([]entity.Comment, error) {
	raw, err := fetchAll[issueComment](ctx, c, withPageSize(commentsURL), token)
	if err != nil {
		return nil, err
	}
	comments := make([]entity.Comment, 0, len(raw))
	for _, cm := range raw {
		comments = append(comments, entity.Comment{
			Author:    cm.User.login(),
			Body:      cm.Body,
			CreatedAt: cm.CreatedAt,
		})
	}
	return comments, nil
}

func (c *Client) GetViewerLogin(ctx context.Context, token string) (string, error) {
	var u user
	if err := c.getJSON(ctx, c.endpoint("/user", nil), token, &u); err != nil {
		return "", err
	}
	return u.Login, nil
}

func (c *Client) ListUserRepos(ctx context.Context, token, login string) ([]entity.Repository, error) {
	return c.listRepos(ctx, token, "/users/"+url.PathEscape(login)+"/repos")
}

func (c *Client) ListOrgs(ctx context.Context, token string) ([]string, error) {
	raw, err := fetchAll[org](ctx, c, c.endpoint("/user/orgs", url.Values{"per_page": {pageSize}}), token)
	if err != nil {
		return nil, err
	}
	logins := make([]string, 0, len(raw))
	for _, o := range raw {
		logins = append(logins, o.Login)
	}
	return logins, nil
}

func (c *Client) ListOrgRepos(ctx context.Context, token, orgLogin string) ([]entity.Repository, error) {
	return c.listRepos(ctx, token, "/orgs/"+url.PathEscape(orgLogin)+"/repos")
}

func (c *Client) listRepos(ctx context.Context, token, path string) ([]entity.Repository, error) {
	u := c.endpoint(path, url.Values{
		"per_page":  {pageSize},
		"sort":      {"full_name"},
		"direction": {"asc"},
	})
	raw, err := fetchAll[repo](ctx, c, u, token)
	if err != nil {
		return nil, err
	}
	repos := make([]entity.Repository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, entity.Repository{
			ID:          r.ID,
			Name:        r.FullName,
			Description: r.Description,
			HTMLURL:     r.HTMLURL,
		})
	}
	return repos, nil
}
