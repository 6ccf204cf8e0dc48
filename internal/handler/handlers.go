// Package handler assembles the inbound transports of the server.
package handler

import (
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/handler/http"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers fails when no listen address is configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
