// Package github talks to the GitHub REST API over plain net/http.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/domain/repository"
)

const (
	DefaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github+json"
	pageSize       = "100"
)

// compile-time proof
var _ repository.HostingClient = (*Client)(nil)

type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.Named("github"),
	}
}

func (c *Client) do(ctx context.Context, rawURL, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", acceptHeader)
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	c.log.Debugw("github request", "url", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{URL: rawURL, Message: err.Error(), Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer closeBody(resp)
		body, _ := io.ReadAll(resp.Body)
		return nil, newUpstreamError(rawURL, resp.StatusCode, resp.Header, body)
	}
	return resp, nil
}

// getJSON reads a single (non-paginated) resource into out.
func (c *Client) getJSON(ctx context.Context, rawURL, token string, out any) error {
	resp, err := c.do(ctx, rawURL, token)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{URL: rawURL, StatusCode: resp.StatusCode, Message: "decode response: " + err.Error(), Err: err}
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// withPageSize asks for the largest page unless the URL already picks one.
func withPageSize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get("per_page") == "" {
		q.Set("per_page", pageSize)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
