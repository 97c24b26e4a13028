package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/domain/usecase"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

func WriteError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, gen.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// ParamErrorHandler answers parameter binding failures of the gen wrapper.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	WriteError(w, http.StatusBadRequest, err.Error())
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, err error) {
	writeServiceError(h.log, w, err)
}

func writeServiceError(log *zap.SugaredLogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warnw("invalid request", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrRateLimited):
		log.Warnw("rate limit reached", "error", err)
		WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrHistoryDisabled):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrTokenMissing):
		log.Errorw("GitHub token not configured")
		WriteError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, usecase.ErrUpstream):
		log.Errorw("upstream error", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Errorw("internal server error", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// tokenFromRequest accepts "token <t>", "Bearer <t>" or a bare token.
func tokenFromRequest(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if scheme, rest, ok := strings.Cut(v, " "); ok {
		if strings.EqualFold(scheme, "token") || strings.EqualFold(scheme, "bearer") {
			v = strings.TrimSpace(rest)
		}
	}
	return strings.Trim(v, `"`)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
