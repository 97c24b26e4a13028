package handlers

import (
	"net/http"

	"github.com/mark47B/pr-metrics/internal/domain/entity"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

// GET /prs-metrics
func (h *Handlers) GetPrsMetrics(w http.ResponseWriter, r *http.Request, params gen.GetPrsMetricsParams) {
	filters := toFilters(gen.GetPrsParams(params))

	report, err := h.service.GetMetrics(r.Context(), filters, tokenFromRequest(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if report.RateLimit != nil {
		h.writeRateLimited(w, report.RateLimit)
		return
	}

	writeJSON(w, http.StatusOK, gen.MetricsResponse{
		TotalCount:   report.TotalCount,
		PullRequests: toPullRequests(report.PullRequests),
		Authors:      report.Authors,
		Aggregated:   toAggregated(report.Aggregated),
	})
}

// GET /prs
func (h *Handlers) GetPrs(w http.ResponseWriter, r *http.Request, params gen.GetPrsParams) {
	result, err := h.service.SearchPullRequests(r.Context(), toFilters(params), tokenFromRequest(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if result.RateLimit != nil {
		h.writeRateLimited(w, result.RateLimit)
		return
	}

	writeJSON(w, http.StatusOK, gen.PullRequestsResponse{
		TotalCount:   result.TotalCount,
		PullRequests: toPullRequests(result.PullRequests),
		Authors:      result.Authors,
	})
}

func (h *Handlers) writeRateLimited(w http.ResponseWriter, notice *entity.RateLimitNotice) {
	h.log.Warnw("rate limit reached, PRs dropped", "dropped", notice.Dropped, "message", notice.Message)
	WriteError(w, http.StatusForbidden, notice.Message)
}

func toFilters(p gen.GetPrsParams) entity.SearchFilters {
	f := entity.SearchFilters{
		Repo:    deref(p.Repo),
		From:    p.From,
		To:      p.To,
		Status:  entity.PRStatus(deref(p.Status)),
		Page:    deref(p.Page),
		PerPage: deref(p.PerPage),
	}
	if p.Author != nil {
		f.Authors = []string{*p.Author}
	}
	return f
}
