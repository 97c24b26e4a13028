package github

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var linkPartRe = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// ParseLinkHeader maps relation names ("next", "last", ...) to URLs.
func ParseLinkHeader(header string) map[string]string {
	links := make(map[string]string)
	if header == "" {
		return links
	}
	for _, part := range strings.Split(header, ",") {
		m := linkPartRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		// rel может содержать несколько значений через пробел
		for _, rel := range strings.Fields(m[2]) {
			links[rel] = m[1]
		}
	}
	return links
}

// FetchAllPages follows rel="next" until it disappears and returns the items
// of every page in order.
func (c *Client) FetchAllPages(ctx context.Context, rawURL, token string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	next := rawURL
	pages := 0

	for next != "" {
		resp, err := c.do(ctx, next, token)
		if err != nil {
			return nil, err
		}

		var page []json.RawMessage
		err = json.NewDecoder(resp.Body).Decode(&page)
		link := resp.Header.Get("Link")
		closeBody(resp)
		if err != nil {
			return nil, &UpstreamError{URL: next, StatusCode: resp.StatusCode, Message: "decode page: " + err.Error(), Err: err}
		}

		items = append(items, page...)
		pages++
		next = ParseLinkHeader(link)["next"]
	}

	c.log.Debugw("fetched all pages", "url", rawURL, "pages", pages, "items", len(items))
	return items, nil
}

func fetchAll[T any](ctx context.Context, c *Client, rawURL, token string) ([]T, error) {
	raw, err := c.FetchAllPages(ctx, rawURL, token)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, &UpstreamError{URL: rawURL, Message: fmt.Sprintf("decode item %d: %v", i, err), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
