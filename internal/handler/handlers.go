// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler aggregates the transport handlers of the drive emulator
// daemon.
package handler

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/handler/http"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(drive store.DriveStore, cfg *config.DrivedConfig, log *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(drive, cfg, log),
	}
}
