package http

import (
	"time"

	"github.com/Arteiii/authly/internal/config"
	"github.com/Arteiii/authly/internal/logger"
)

type Handler struct {
	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		requestTimeout: cfg.Server.RequestTimeout,
		allowedOrigins: cfg.CORS.AllowedOrigins,
		logger:         logger,
	}
}
