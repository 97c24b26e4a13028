package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark47B/pr-metrics/internal/domain/usecase"
)

// UpstreamError is any failed exchange with GitHub: a non-2xx answer or a
// transport failure (StatusCode == 0).
type UpstreamError struct {
	URL         string
	StatusCode  int
	Body        string
	Message     string
	RateLimited bool
	Err         error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("GitHub API error: %s: %s", e.URL, e.Message)
	}
	return fmt.Sprintf("GitHub API error: %d %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case usecase.ErrUpstream:
		return true
	case usecase.ErrRateLimited:
		return e.RateLimited
	}
	return false
}

func newUpstreamError(rawURL string, status int, header http.Header, body []byte) *UpstreamError {
	msg := errorMessage(body)
	return &UpstreamError{
		URL:         rawURL,
		StatusCode:  status,
		Body:        strings.TrimSpace(string(body)),
		Message:     msg,
		RateLimited: IsRateLimited(status, header, msg),
	}
}

// errorMessage pulls "message" out of a GitHub error document, falling back to
// the raw body.
func errorMessage(body []byte) string {
	var doc struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &doc); err == nil && doc.Message != "" {
		return doc.Message
	}
	return strings.TrimSpace(string(body))
}

// IsRateLimited reports whether a failed response means the token ran out of
// quota. Structured signals win; the message text is only a fallback.
func IsRateLimited(status int, header http.Header, message string) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if status == http.StatusForbidden && header != nil {
		if header.Get("X-RateLimit-Remaining") == "0" || header.Get("Retry-After") != "" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(message), "rate limit")
}

// UpstreamMessage is the message GitHub put in the error document.
func (e *UpstreamError) UpstreamMessage() string { return e.Message }
