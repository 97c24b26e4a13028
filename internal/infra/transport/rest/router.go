package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/domain/usecase"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/handlers"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/middleware"
)

// NewRouter builds the chi router with the generated routes, request
// validation against the embedded OpenAPI document and /openapi.json.
func NewRouter(service usecase.Service, log *zap.SugaredLogger) (http.Handler, error) {
	// Валидатор обнуляет servers, поэтому отдаём наружу отдельную копию
	served, err := gen.GetSwagger()
	if err != nil {
		return nil, err
	}
	doc, err := gen.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.RequestLogger(log))
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})
	router.Use(validate)

	router.Get("/openapi.json", handlers.SpecHandler(served))

	h := handlers.NewHandlers(service, log)
	gen.HandlerWithOptions(h, gen.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handlers.ParamErrorHandler,
	})

	return router, nil
}
