package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// normalizeFilters validates filters and fills the defaults.
func (s *ServiceImpl) normalizeFilters(f entity.SearchFilters) (entity.SearchFilters, error) {
	f.Repo = strings.TrimSpace(f.Repo)
	if f.Repo == "" {
		f.Repo = s.opts.DefaultRepo
	}
	if f.Repo == "" {
		return f, fmt.Errorf("%w: project repo not specified in query parameters or configuration", usecase.ErrValidation)
	}
	if owner, name, ok := strings.Cut(f.Repo, "/"); !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return f, fmt.Errorf("%w: repo must look like owner/name, got %q", usecase.ErrValidation, f.Repo)
	}

	f.From = strings.TrimSpace(f.From)
	f.To = strings.TrimSpace(f.To)
	if f.From == "" || f.To == "" {
		return f, fmt.Errorf("%w: missing required date range parameters", usecase.ErrValidation)
	}
	from, err := parseDate(f.From)
	if err != nil {
		return f, fmt.Errorf("%w: invalid from date %q", usecase.ErrValidation, f.From)
	}
	to, err := parseDate(f.To)
	if err != nil {
		return f, fmt.Errorf("%w: invalid to date %q", usecase.ErrValidation, f.To)
	}
	if from.After(to) {
		return f, fmt.Errorf("%w: from date is after to date", usecase.ErrValidation)
	}

	status, err := parseStatus(string(f.Status))
	if err != nil {
		return f, err
	}
	f.Status = status

	f.Authors = splitAuthors(f.Authors)

	if f.Page == 0 {
		f.Page = defaultPage
	}
	if f.PerPage == 0 {
		f.PerPage = defaultPerPage
	}
	if f.Page < 1 {
		return f, fmt.Errorf("%w: page must be positive", usecase.ErrValidation)
	}
	if f.PerPage < 1 || f.PerPage > maxPerPage {
		return f, fmt.Errorf("%w: perPage must be between 1 and %d", usecase.ErrValidation, maxPerPage)
	}
	return f, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func parseStatus(v string) (entity.PRStatus, error) {
	switch st := entity.PRStatus(strings.ToLower(strings.TrimSpace(v))); st {
	case "":
		return entity.StatusAll, nil
	case entity.StatusAll, entity.StatusOpen, entity.StatusClosed, entity.StatusMerged:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", usecase.ErrValidation, v)
	}
}

// splitAuthors accepts "alice;bob" style entries as well as separate ones.
func splitAuthors(raw []string) []string {
	var authors []string
	for _, entry := range raw {
		for _, a := range strings.Split(entry, ";") {
			if a = strings.TrimSpace(a); a != "" {
				authors = append(authors, a)
			}
		}
	}
	return authors
}

// BuildSearchQuery renders the issue search expression. "merged" has no
// upstream qualifier, so it searches closed PRs and is narrowed per PR later.
func BuildSearchQuery(f entity.SearchFilters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "repo:%s type:pr created:%s..%s", f.Repo, f.From, f.To)

	switch f.Status {
	case entity.StatusOpen:
		b.WriteString(" state:open")
	case entity.StatusClosed, entity.StatusMerged:
		b.WriteString(" state:closed")
	}

	// несколько author: в запросе GitHub объединяет через OR
	for _, a := range f.Authors {
		b.WriteString(" author:")
		b.WriteString(a)
	}
	return b.String()
}
