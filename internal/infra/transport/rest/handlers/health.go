package handlers

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// GET /healthz
func (h *Handlers) GetHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// SpecHandler serves the OpenAPI document as JSON.
func SpecHandler(doc *openapi3.T) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	}
}
