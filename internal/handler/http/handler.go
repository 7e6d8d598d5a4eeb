// Package http implements the HTTP transport layer of the drive emulator.
// It provides middleware, route handlers, and request/response utilities for
// the drive REST API the client's adapter talks to. Authentication and
// request logging are handled at this layer before requests reach storage.
package http

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type Handler struct {
	drive store.DriveStore
	cfg   *config.DrivedConfig

	logger *logger.Logger
}

func NewHandler(drive store.DriveStore, cfg *config.DrivedConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		drive:  drive,
		cfg:    cfg,
		logger: logger,
	}
}
