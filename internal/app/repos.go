package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
)

// ListMyRepos groups the viewer's repositories by owner: "own" for the
// personal ones plus one group per organization.
func (s *ServiceImpl) ListMyRepos(ctx context.Context, token string) (map[string][]entity.Repository, error) {
	token, err := s.resolveToken(token)
	if err != nil {
		return nil, err
	}

	login, err := s.client.GetViewerLogin(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get viewer: %w", err)
	}

	own, err := s.client.ListUserRepos(ctx, token, login)
	if err != nil {
		return nil, fmt.Errorf("list repos of %s: %w", login, err)
	}

	orgs, err := s.client.ListOrgs(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list orgs: %w", err)
	}

	orgRepos := make([][]entity.Repository, len(orgs))
	var g errgroup.Group
	g.SetLimit(s.opts.DetailConcurrency)
	for i, org := range orgs {
		g.Go(func() error {
			repos, err := s.client.ListOrgRepos(ctx, token, org)
			if err != nil {
				return fmt.Errorf("list repos of org %s: %w", org, err)
			}
			orgRepos[i] = repos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	grouped := make(map[string][]entity.Repository, len(orgs)+1)
	grouped[entity.OwnReposGroup] = nonNil(own)
	for i, org := range orgs {
		grouped[org] = nonNil(orgRepos[i])
	}

	s.log.Infow("listed repositories", "login", login, "orgs", len(orgs))
	return grouped, nil
}

func nonNil(repos []entity.Repository) []entity.Repository {
	if repos == nil {
		return []entity.Repository{}
	}
	return repos
}
