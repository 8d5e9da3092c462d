package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/palmcar/rentaldesk/internal/config"
	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/service"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/internal/tui"
	"github.com/palmcar/rentaldesk/internal/workers"
	"github.com/palmcar/rentaldesk/models"
)

// App ties the services, background workers and terminal UI together.
type App struct {
	services *service.Services
	ui       *tui.TUI
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(ctx context.Context, services *service.Services, ui *tui.TUI, cfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers: workers.NewWorkers(
			workers.NewSnapshotWorker(ctx, services.SnapshotJob, cfg.SnapshotInterval),
		),
		logger: logger,
	}, nil
}

// Run drives the whole application: restore or establish a session, start
// the background workers, then hand control to the main loop. A logout
// loops back to the start menu.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	defer a.workers.Stop()

	for {
		session, hasSession, err := a.resolveSession(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session, hasSession)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := a.services.AuthService.ClearSession(ctx); err != nil {
			a.logger.Err(err).Msg("clearing session failed")
		}
	}
}

// resolveSession restores the persisted session pointer if one exists,
// otherwise runs the interactive login flow.
func (a *App) resolveSession(ctx context.Context) (models.Session, bool, error) {
	session, err := a.services.AuthService.Session(ctx)
	if err == nil {
		a.logger.Info().Str("userID", session.UserID).Msg("session restored")
		return session, true, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, false, fmt.Errorf("restoring session failed: %w", err)
	}

	session, guest, err := a.ui.LoginFlow(ctx)
	if err != nil {
		return models.Session{}, false, err
	}
	if guest {
		return models.Session{}, false, nil
	}

	return session, true, nil
}
