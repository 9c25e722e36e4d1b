package handler

import (
	"github.com/dkoval/college-resource-hub/internal/handler/http"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/service"
)

// Handlers aggregates the transport handlers of the application. The API is
// served over HTTP only.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
