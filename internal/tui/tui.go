// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	store    store.LocalStore
}

func New(services *service.ClientServices, localStore store.LocalStore, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, store: localStore}, nil
}

// Run drives the whole client session: connect, pick a snapshot file, then
// the main screen with records, sync status and conflict resolution.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.store)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
