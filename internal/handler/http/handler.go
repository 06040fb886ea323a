package http

import (
	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	cors     config.CORS

	logger *logger.Logger
}

func NewHandler(services *service.Services, cors config.CORS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cors:     cors,
		logger:   logger,
	}
}
