package handlers

import (
	"net/http"

	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

// GET /my-repos
func (h *Handlers) GetMyRepos(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListMyRepos(r.Context(), tokenFromRequest(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.ReposResponse{Repos: toRepos(grouped)})
}
