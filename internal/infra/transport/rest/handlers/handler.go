package handlers

import (
	"go.uber.org/zap"

	"github.com/mark47B/pr-metrics/internal/domain/usecase"
	"github.com/mark47B/pr-metrics/internal/infra/transport/rest/gen"
)

type Handlers struct {
	gen.Unimplemented
	service usecase.Service
	log     *zap.SugaredLogger
}

func NewHandlers(service usecase.Service, log *zap.SugaredLogger) gen.ServerInterface {
	return &Handlers{
		service: service,
		log:     log.Named("rest"),
	}
}
