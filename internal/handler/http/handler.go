package http

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// authTokenHeader carries the session token on authenticated requests.
const authTokenHeader = "auth-token"

type Handler struct {
	services *service.Services
	pinger   store.Pinger
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler returns a Handler. pinger backs the health endpoint and may
// be nil, in which case the server always reports itself healthy.
func NewHandler(services *service.Services, pinger store.Pinger, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		cfg:      cfg,
		logger:   logger,
	}
}
