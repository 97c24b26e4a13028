package handlers

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

// GET /metrics/history
func (h *Handlers) GetMetricsHistory(w http.ResponseWriter, r *http.Request, params gen.GetMetricsHistoryParams) {
	snapshots, err := h.service.ListSnapshots(r.Context(), deref(params.Repo), deref(params.Limit))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.HistoryResponse{Snapshots: toSnapshots(snapshots)})
}

// GET /metrics/history/{snapshotId}/pulls
func (h *Handlers) GetMetricsHistorySnapshotIdPulls(w http.ResponseWriter, r *http.Request, snapshotId openapi_types.UUID) {
	prs, err := h.service.GetSnapshotPullRequests(r.Context(), snapshotId.String())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.SnapshotPullsResponse{PullRequests: toSnapshotPulls(prs)})
}
