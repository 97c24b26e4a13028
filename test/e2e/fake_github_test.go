//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

type fakeReview struct {
	author string
	state  string
	at     time.Time
}

type fakePR struct {
	number    int
	title     string
	author    string
	assignees []string
	state     string
	createdAt time.Time
	closedAt  *time.Time
	mergedAt  *time.Time
	reviews   []fakeReview
	commits   []time.Time
	comments  []fakeReview

	// reviews отвечают 403 с исчерпанным лимитом
	rateLimited bool
}

// fakeGitHub — минимальный GitHub REST API поверх chi.
// Коммиты отдаются по одному на страницу, чтобы гонять Link-пагинацию.
type fakeGitHub struct {
	server *httptest.Server

	mu       sync.Mutex
	prs      []fakePR
	queries  []string
	tokens   []string
	orgs     map[string][]string
	ownRepos []string
}

func newFakeGitHub(prs ...fakePR) *fakeGitHub {
	f := &fakeGitHub{prs: prs, orgs: map[string][]string{}}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.tokens = append(f.tokens, req.Header.Get("Authorization"))
			f.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/search/issues", f.search)
	r.Get("/repos/{owner}/{name}/pulls/{number}", f.pull)
	r.Get("/repos/{owner}/{name}/pulls/{number}/reviews", f.reviews)
	r.Get("/repos/{owner}/{name}/pulls/{number}/commits", f.commits)
	r.Get("/repos/{owner}/{name}/issues/{number}/comments", f.comments)
	r.Get("/user", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, map[string]any{"login": "alice"})
	})
	r.Get("/users/{login}/repos", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, f.repoList(f.ownRepos))
	})
	r.Get("/user/orgs", func(w http.ResponseWriter, _ *http.Request) {
		orgs := make([]map[string]any, 0, len(f.orgs))
		for login := range f.orgs {
			orgs = append(orgs, map[string]any{"login": login})
		}
		writeBody(w, orgs)
	})
	r.Get("/orgs/{org}/repos", func(w http.ResponseWriter, req *http.Request) {
		writeBody(w, f.repoList(f.orgs[chi.URLParam(req, "org")]))
	})

	f.server = httptest.NewServer(r)
	return f
}

func (f *fakeGitHub) Close() { f.server.Close() }

func (f *fakeGitHub) URL() string { return f.server.URL }

func (f *fakeGitHub) lastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return ""
	}
	return f.queries[len(f.queries)-1]
}

func (f *fakeGitHub) seenTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func (f *fakeGitHub) find(req *http.Request) (fakePR, bool) {
	n, err := strconv.Atoi(chi.URLParam(req, "number"))
	if err != nil {
		return fakePR{}, false
	}
	for _, pr := range f.prs {
		if pr.number == n {
			return pr, true
		}
	}
	return fakePR{}, false
}

func (f *fakeGitHub) search(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, req.URL.Query().Get("q"))
	f.mu.Unlock()

	items := make([]map[string]any, 0, len(f.prs))
	for _, pr := range f.prs {
		assignees := make([]map[string]any, 0, len(pr.assignees))
		for _, a := range pr.assignees {
			assignees = append(assignees, map[string]any{"login": a})
		}
		items = append(items, map[string]any{
			"number":       pr.number,
			"title":        pr.title,
			"html_url":     fmt.Sprintf("https://github.com/acme/widgets/pull/%d", pr.number),
			"state":        pr.state,
			"created_at":   pr.createdAt,
			"comments_url": fmt.Sprintf("%s/repos/acme/widgets/issues/%d/comments", f.server.URL, pr.number),
			"user":         map[string]any{"login": pr.author},
			"assignees":    assignees,
			"pull_request": map[string]any{
				"url": fmt.Sprintf("%s/repos/acme/widgets/pulls/%d", f.server.URL, pr.number),
			},
		})
	}
	writeBody(w, map[string]any{"total_count": len(f.prs), "items": items})
}

func (f *fakeGitHub) pull(w http.ResponseWriter, req *http.Request) {
	pr, ok := f.find(req)
	if !ok {
		notFound(w)
		return
	}
	writeBody(w, map[string]any{"closed_at": pr.closedAt, "merged_at": pr.mergedAt})
}

func (f *fakeGitHub) reviews(w http.ResponseWriter, req *http.Request) {
	pr, ok := f.find(req)
	if !ok {
		notFound(w)
		return
	}
	if pr.rateLimited {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
		writeBody(w, map[string]any{"message": "API rate limit exceeded for user ID 1."})
		return
	}
	out := make([]map[string]any, 0, len(pr.reviews))
	for _, r := range pr.reviews {
		out = append(out, map[string]any{
			"user":         map[string]any{"login": r.author},
			"state":        r.state,
			"body":         "",
			"submitted_at": r.at,
		})
	}
	writeBody(w, out)
}

func (f *fakeGitHub) commits(w http.ResponseWriter, req *http.Request) {
	pr, ok := f.find(req)
	if !ok {
		notFound(w)
		return
	}
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	if page < len(pr.commits) {
		next := *req.URL
		q := next.Query()
		q.Set("page", strconv.Itoa(page+1))
		next.RawQuery = q.Encode()
		w.Header().Set("Link", fmt.Sprintf(`<%s%s>; rel="next"`, f.server.URL, next.RequestURI()))
	}
	out := []map[string]any{}
	if page <= len(pr.commits) {
		out = append(out, map[string]any{
			"sha":    fmt.Sprintf("sha-%d-%d", pr.number, page),
			"commit": map[string]any{"author": map[string]any{"date": pr.commits[page-1]}},
		})
	}
	writeBody(w, out)
}

func (f *fakeGitHub) comments(w http.ResponseWriter, req *http.Request) {
	pr, ok := f.find(req)
	if !ok {
		notFound(w)
		return
	}
	out := make([]map[string]any, 0, len(pr.comments))
	for _, c := range pr.comments {
		out = append(out, map[string]any{
			"user":       map[string]any{"login": c.author},
			"body":       "lgtm",
			"created_at": c.at,
		})
	}
	writeBody(w, out)
}

func (f *fakeGitHub) repoList(names []string) []map[string]any {
	out := make([]map[string]any, 0, len(names))
	for i, name := range names {
		out = append(out, map[string]any{
			"id":          i + 1,
			"full_name":   name,
			"description": nil,
			"html_url":    "https://github.com/" + name,
		})
	}
	return out
}

func writeBody(w http.ResponseWriter, body any) {
	_ = json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	writeBody(w, map[string]any{"message": "Not Found"})
}
