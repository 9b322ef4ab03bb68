// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

// Package app wires the taxonomy configurator together: it builds the
// snapshot store from the configuration, restores the application state,
// creates the services and drives the interactive login and configuration
// flows until the configurator quits.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/config"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/store"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/tui"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

type App struct {
	log       *logger.Logger
	state     *models.AppState
	snapshots store.SnapshotStore
	services  *service.Services
	tui       *tui.TUI
}

// New builds the full application: snapshot store per the configured driver,
// state restored from the latest snapshot (or fresh when none exists yet),
// services and the terminal UI.
//
// A corrupt or unreadable snapshot is an error rather than a silent reset:
// the next save would overwrite whatever is still recoverable in the file.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	snapshots, err := store.New(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create snapshot store: %w", err)
	}

	state, err := snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSnapshot) {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		log.Info().Str("func", "app.New").Msg("no snapshot found, starting with a fresh state")
		state = models.NewAppState()
	}

	services := service.NewServices(state, log)

	save := func(ctx context.Context) error {
		if saveErr := snapshots.Save(ctx, state); saveErr != nil {
			logger.FromContext(ctx).Error().Str("func", "app.save").Err(saveErr).Msg("saving snapshot")
			return saveErr
		}
		return nil
	}

	ui, err := tui.New(services, save, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		log:       log,
		state:     state,
		snapshots: snapshots,
		services:  services,
		tui:       ui,
	}, nil
}

// Run drives one full session: login (with first-launch registration when
// needed), base-field initialization on the very first session, then the
// configuration loop. An explicit logout starts over with the login screen;
// quitting ends the program.
func (a *App) Run(ctx context.Context) error {
	configurator, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	a.log.Info().Str("func", "App.Run").Str("username", configurator.Username()).Msg("configurator signed in")

	if !a.services.Configuration.AreBaseFieldsInitialized() {
		if err = a.services.Configuration.InitBaseFields(); err != nil {
			return fmt.Errorf("initialize base fields: %w", err)
		}
		// The snapshot failing here is reported on the next in-session save.
		if saveErr := a.snapshots.Save(ctx, a.state); saveErr != nil {
			a.log.Error().Str("func", "App.Run").Err(saveErr).Msg("saving snapshot after base-field initialization")
		}
	}

	logout, err := a.tui.MainLoop(ctx, configurator)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.log.Info().Str("func", "App.Run").Msg("configurator logged out")
		return a.Run(ctx)
	}

	return nil
}
