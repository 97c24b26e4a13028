package github

import "time"

// Wire shapes of the GitHub REST API, trimmed to the fields we read.

type user struct {
	Login string `json:"login"`
}

func (u *user) login() string {
	if u == nil {
		return ghostLogin
	}
	return u.Login
}

// GitHub shows deleted accounts as "ghost".
const ghostLogin = "ghost"

type searchResponse struct {
	TotalCount int         `json:"total_count"`
	Items      []issueItem `json:"items"`
}

type issueItem struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	HTMLURL     string    `json:"html_url"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	CommentsURL string    `json:"comments_url"`
	User        *user     `json:"user"`
	Assignees   []user    `json:"assignees"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

type pullRequest struct {
	ClosedAt *time.Time `json:"closed_at"`
	MergedAt *time.Time `json:"merged_at"`
}

type review struct {
	User        *user      `json:"user"`
	State       string     `json:"state"`
	Body        *string    `json:"body"`
	SubmittedAt *time.Time `json:"submitted_at"`
}

type commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author *struct {
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type issueComment struct {
	User      *user     `json:"user"`
	Body      *string   `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type repo struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
}

type org struct {
	Login string `json:"login"`
}
